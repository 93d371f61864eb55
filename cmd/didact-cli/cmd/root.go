package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"didact/internal/adapters/host"
	"didact/internal/adapters/tui"
	"didact/internal/bootstrap"
	"didact/internal/config"
	"didact/internal/logging"
	"didact/internal/ports"
)

var (
	configPath    string
	workspaceRoot string
	extensionRoot string
	dbPath        string
	noTUI         bool
	quiet         bool

	rt      *bootstrap.Runtime
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "didact-cli",
	Short: "Run and manage Didact tutorials from the command line",
	Long: `didact-cli runs didact:// links and manages the registry of Didact tutorials.

Links invoke commands registered in the host, with arguments taken from the
link itself, from resolved file paths, or from the user when a link asks for
input. Registered tutorials are listed in an outline of categories, tutorials
and their timed steps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			logger.Sync()
		}
		if rt != nil {
			return rt.Close()
		}
		return nil
	},
}

func setup(ctx context.Context) error {
	cfg, err := config.Load(config.LoadOptions{ExplicitFilePath: configPath})
	if err != nil {
		return err
	}
	overrides := map[string]string{
		config.KeyWorkspaceRoot: workspaceRoot,
		config.KeyExtensionRoot: extensionRoot,
		config.KeyDBPath:        dbPath,
	}
	for key, value := range overrides {
		if value != "" {
			cfg.Set(key, value)
		}
	}
	if quiet {
		cfg.Set(config.KeyDisableDefaultNotifications, true)
	}

	logger, err = logging.NewLogger(cfg.LogLevel())
	if err != nil {
		return err
	}

	var prompter ports.Prompter = tui.NewBridge()
	if noTUI {
		prompter = host.NewLinePrompter(os.Stdin, os.Stderr)
	}

	rt, err = bootstrap.New(ctx, bootstrap.Options{
		Config:   cfg,
		Notifier: host.NewConsoleNotifier(os.Stdout),
		Prompter: prompter,
		Logger:   logger,
		Out:      os.Stdout,
	})
	return err
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a didact.yaml configuration file")
	flags.StringVarP(&workspaceRoot, "workspace", "w", "", "workspace root for projectFilePath links")
	flags.StringVar(&extensionRoot, "extension-root", "", "Didact install directory for srcFilePath links")
	flags.StringVar(&dbPath, "db", "", "path to the registry database")
	flags.BoolVar(&noTUI, "no-tui", false, "ask for link input on plain stdin instead of an interactive prompt")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress the default success notification")
}

// GetRuntime returns the initialized runtime
func GetRuntime() *bootstrap.Runtime {
	return rt
}
