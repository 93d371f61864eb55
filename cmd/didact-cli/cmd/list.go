package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"didact/internal/application/commands"
)

var listCategories bool

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List registered tutorials",
	Long: `List registered tutorials, all of them or those of one category.

Examples:
  didact-cli list
  didact-cli list Didact
  didact-cli list --categories`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if listCategories {
			categories, err := commands.NewListCategoriesCommand(GetRuntime().Registry).Execute(ctx)
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Println(c)
			}
			return nil
		}

		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		tutorials, err := commands.NewListTutorialsCommand(GetRuntime().Registry, category).Execute(ctx)
		if err != nil {
			return err
		}
		for _, t := range tutorials {
			fmt.Printf("%s  %s  %s\n", t.Category, t.Name, t.SourceURI)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search registered tutorials",
	Long: `Search registered tutorials by name, category or source URI.

Results are ranked by relevance using fuzzy matching.

Example:
  didact-cli search java`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := commands.NewSearchTutorialsCommand(GetRuntime().Registry, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("[%s] %s  %s\n", strings.ToLower(m.Category), m.Name, m.SourceURI)
		}
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the tutorial outline",
	Long: `Display the outline of registered tutorials: categories, tutorials with
their time estimate, and the timed headings of each tutorial.

Example:
  didact-cli tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		trees, err := commands.NewBuildOutlineCommand(GetRuntime().Outline).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range trees {
			printTree(t, 0)
		}
		return nil
	},
}

func printTree(tree *commands.OutlineTree, depth int) {
	indent := strings.Repeat("  ", depth)
	if label := tree.Node.DurationLabel(); label != "" {
		fmt.Printf("%s%s %s\n", indent, tree.Node.Label, label)
	} else {
		fmt.Printf("%s%s\n", indent, tree.Node.Label)
	}
	for _, child := range tree.Children {
		printTree(child, depth+1)
	}
}

func init() {
	listCmd.Flags().BoolVar(&listCategories, "categories", false, "list category names only")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(treeCmd)
}
