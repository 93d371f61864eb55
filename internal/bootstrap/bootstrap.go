package bootstrap

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"didact/internal/adapters/editor"
	"didact/internal/adapters/filesystem"
	"didact/internal/adapters/host"
	"didact/internal/adapters/htmlscan"
	"didact/internal/adapters/launcher"
	"didact/internal/adapters/render"
	"didact/internal/adapters/sqlite"
	"didact/internal/application"
	"didact/internal/application/commands"
	"didact/internal/config"
	"didact/internal/ports"
)

// Options are the front-end specific collaborators
type Options struct {
	Config   *config.Config
	Notifier ports.Notifier
	Prompter ports.Prompter // nil cancels every prompt
	Logger   *zap.Logger
	// Out receives terminal output of the built-in commands
	Out io.Writer
}

// Runtime is a fully wired Didact instance
type Runtime struct {
	Host       *application.Host
	Commands   *host.Commands
	Builtins   *host.Builtins
	Registry   *application.TutorialRegistry
	Links      *application.LinkHandler
	Outline    *application.OutlineProvider
	Completion *application.CompletionEngine
	Fetcher    *filesystem.Fetcher
	Editor     *editor.Opener

	store *sqlite.Store
}

// New opens the store and wires every component. Close releases the store.
func New(ctx context.Context, opts Options) (*Runtime, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config

	store := sqlite.NewStore()
	if err := store.Open(cfg.DBPath()); err != nil {
		return nil, err
	}
	logger.Debug("store opened", zap.String("path", store.Path()))

	commandHost := host.NewCommands()
	fetcher := filesystem.NewFetcher(cfg.ExtensionRoot())
	renderer := render.NewRenderer()
	scanner := htmlscan.NewScanner()
	workspace := filesystem.NewWorkspace(cfg.WorkspaceRoot(), cfg.ExtensionRoot(), cfg.ExtensionsDir())

	h := &application.Host{
		Commands:      commandHost,
		Workspace:     workspace,
		Prompter:      opts.Prompter,
		Notifier:      opts.Notifier,
		Settings:      cfg,
		Store:         store,
		Fetcher:       fetcher,
		Renderer:      renderer,
		Scanner:       scanner,
		Logger:        logger,
		ExtensionRoot: cfg.ExtensionRoot(),
	}

	rt := &Runtime{
		Host:       h,
		Commands:   commandHost,
		Registry:   application.NewTutorialRegistry(h),
		Links:      application.NewLinkHandler(h),
		Completion: application.NewCompletionEngine(h),
		Fetcher:    fetcher,
		Editor:     editor.NewOpener(cfg.Editor()),
		store:      store,
	}
	rt.Outline = application.NewOutlineProvider(h, rt.Registry)
	rt.Builtins = &host.Builtins{
		Registry:  rt.Registry,
		Workspace: workspace,
		Notifier:  opts.Notifier,
		Fetcher:   fetcher,
		Renderer:  renderer,
		Links:     scanner,
		Opener:    rt.Editor,
		Launcher:  launcher.New(),
		Out:       opts.Out,
		Logger:    logger,
	}
	if err := rt.Builtins.Install(commandHost); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to install commands: %w", err)
	}

	if cfg.SeedDefaults() {
		added, err := commands.NewSeedDefaultsCommand(rt.Registry, cfg.ExtensionRoot()).Execute(ctx)
		if err != nil {
			store.Close()
			return nil, err
		}
		if len(added) > 0 {
			logger.Info("registered default tutorials", zap.Strings("names", added))
		}
	}
	return rt, nil
}

// Close releases the store
func (r *Runtime) Close() error {
	return r.store.Close()
}
