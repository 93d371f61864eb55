package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"didact/internal/application/commands"
	"didact/internal/domain"
)

var runCmd = &cobra.Command{
	Use:   "run <link>",
	Short: "Run a didact:// link",
	Long: `Run a didact:// link: resolve its path, collect its arguments and invoke
its command. The command's completion or error message is printed.

Examples:
  didact-cli run 'didact://?commandId=didact.echo&text=hello'
  didact-cli run 'didact://?commandId=vscode.open&projectFilePath=README.md'
  didact-cli run 'didact://?commandId=didact.echo&user=Your%20name'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome, err := commands.NewRunLinkCommand(GetRuntime().Links, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if !outcome.Succeeded() {
			return outcome.Err
		}
		if outcome.Result != nil {
			fmt.Printf("%v\n", outcome.Result)
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <link>",
	Short: "Show what a didact:// link would run",
	Long: `Parse a didact:// link without running it and print its command,
path field and decoded arguments.

Example:
  didact-cli parse 'didact://?commandId=vscode.didact.requirementCheck&text=maven$$mvn%20-v$$Apache%20Maven'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := commands.NewParseLinkCommand(args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printInvocation(inv)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <tutorial-uri>",
	Short: "Run every requirement check of a tutorial",
	Long: `Run every requirement check linked from a tutorial and print the
status of each requirement.

Example:
  didact-cli validate file:///home/me/tutorials/java.didact.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outcome := GetRuntime().Links.Run(cmd.Context(), &domain.LinkInvocation{
			CommandID: domain.CommandValidateAllRequirements,
			Text:      []string{args[0]},
		})
		if !outcome.Succeeded() {
			return outcome.Err
		}
		if outcome.Result != nil {
			fmt.Printf("%v\n", outcome.Result)
		}
		return nil
	},
}

func printInvocation(inv *domain.LinkInvocation) {
	fmt.Printf("commandId  %s\n", inv.CommandID)
	if inv.HasPath() {
		fmt.Printf("%-10s %s\n", inv.PathKind, inv.Path)
	}
	if len(inv.Text) > 0 {
		fmt.Printf("text       %s\n", strings.Join(inv.Text, " | "))
	}
	if len(inv.User) > 0 {
		fmt.Printf("user       %s\n", strings.Join(inv.User, " | "))
	}
	if inv.Number != "" {
		fmt.Printf("number     %s\n", inv.Number)
	}
	if inv.JSON != "" {
		fmt.Printf("json       %s\n", inv.JSON)
	}
	if inv.CompletionMessage != "" {
		fmt.Printf("completion %s\n", inv.CompletionMessage)
	}
	if inv.ErrorMessage != "" {
		fmt.Printf("error      %s\n", inv.ErrorMessage)
	}
	fmt.Printf("link       %s\n", inv.String())
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
}
