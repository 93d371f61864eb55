package application

import (
	"go.uber.org/zap"

	"didact/internal/ports"
)

// Host bundles the collaborators every component reaches the host through.
// It is built once at process start and passed to the constructors below.
type Host struct {
	Commands  ports.CommandRegistry
	Workspace ports.Workspace
	Prompter  ports.Prompter
	Notifier  ports.Notifier
	Settings  ports.Settings
	Store     ports.PersistentStore
	Fetcher   ports.DocumentFetcher
	Renderer  ports.DocumentRenderer
	Scanner   ports.HeadingScanner
	Logger    *zap.Logger

	// ExtensionRoot is the install directory of this extension (srcFilePath base)
	ExtensionRoot string
}

func (h *Host) logger() *zap.Logger {
	if h == nil || h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// settings never returns nil
func (h *Host) settings() ports.Settings {
	if h.Settings == nil {
		return defaultSettings{}
	}
	return h.Settings
}

type defaultSettings struct{}

func (defaultSettings) DefaultNotificationsDisabled() bool { return false }
