package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"didact/internal/adapters/tui"
	"didact/internal/bootstrap"
	"didact/internal/config"
	"didact/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to a didact.yaml configuration file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(config.LoadOptions{ExplicitFilePath: configPath})
	if err != nil {
		return err
	}

	// stderr belongs to the alt screen, so logs only go to a file when one is configured
	logger := zap.NewNop()
	if cfg.LogFile() != "" {
		logger, err = logging.NewLogger(cfg.LogLevel(), cfg.LogFile())
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	bridge := tui.NewBridge()
	rt, err := bootstrap.New(ctx, bootstrap.Options{
		Config:   cfg,
		Notifier: bridge,
		Prompter: bridge,
		Logger:   logger,
		Out:      bridge,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	app := tui.NewApp(tui.Options{
		Outline:  rt.Outline,
		Registry: rt.Registry,
		Links:    rt.Links,
		Paths:    rt.Fetcher,
		Editor:   rt.Editor,
	})
	return tui.Run(ctx, app, bridge)
}
