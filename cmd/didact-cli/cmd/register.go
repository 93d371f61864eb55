package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"didact/internal/application/commands"
)

var registerCmd = &cobra.Command{
	Use:   "register <name> <source-uri> <category>",
	Short: "Register a tutorial",
	Long: `Register a tutorial under a category. A tutorial already registered with
the same name in the same category is left untouched and reported as an error.

Examples:
  didact-cli register "Java Setup" file:///home/me/java.didact.md Languages
  didact-cli register Demo demos/markdown/didact-demo.didact.md Didact`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRegisterTutorialCommand(GetRuntime().Registry, args[0], args[1], args[2]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister <name> <category>",
	Short: "Remove one tutorial from the registry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := commands.NewUnregisterTutorialCommand(GetRuntime().Registry, args[0], args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var unregisterAllCmd = &cobra.Command{
	Use:   "unregister-all",
	Short: "Clear every registered tutorial",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := commands.NewUnregisterAllCommand(GetRuntime().Registry).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(unregisterAllCmd)
}
