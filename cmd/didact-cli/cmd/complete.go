package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"didact/internal/application/commands"
)

var (
	completeCursor int
	completeCopy   bool
)

var completeCmd = &cobra.Command{
	Use:   "complete <file-name> <line>",
	Short: "Suggest didact link completions for a tutorial line",
	Long: `Suggest completions for the cursor position in one line of a tutorial
source. The file extension (.md or .adoc) selects the link syntax.

Examples:
  didact-cli complete tutorial.md '[Check](didact:'
  didact-cli complete tutorial.md '[Check](didact://?commandId=vscode.didact.req' --copy
  didact-cli complete tutorial.adoc 'link:didact://' --cursor 10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := args[1]
		cursor := completeCursor
		if cursor < 0 || cursor > len(line) {
			cursor = len(line)
		}

		result, err := commands.NewCompleteCommand(GetRuntime().Completion, args[0], line, cursor).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(result.Candidates) == 0 {
			fmt.Println("No completions")
			return nil
		}
		for _, c := range result.Candidates {
			fmt.Printf("%s\n  %s\n", c.Label, c.Apply(line, cursor))
			if c.DocumentationText != "" {
				fmt.Printf("  %s\n", c.DocumentationText)
			}
		}

		if completeCopy {
			applied := result.Candidates[0].Apply(line, cursor)
			if err := clipboard.WriteAll(applied); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Println("Copied first completion to clipboard")
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVar(&completeCursor, "cursor", -1, "byte offset of the cursor in the line (default end of line)")
	completeCmd.Flags().BoolVar(&completeCopy, "copy", false, "copy the line with the first completion applied")
	rootCmd.AddCommand(completeCmd)
}
