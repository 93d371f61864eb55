package ports

import "context"

// CommandRegistry is the host's live table of invocable commands
type CommandRegistry interface {
	// ListCommands returns the ids of every registered command, in registration order
	ListCommands(ctx context.Context) ([]string, error)

	// Invoke runs a command with positional arguments.
	// It fails when the id is unknown or the command itself fails.
	Invoke(ctx context.Context, id string, args ...any) (any, error)
}

// Workspace gives access to the workspace and installed-extension roots
type Workspace interface {
	// WorkspaceRoot returns the first open workspace root
	WorkspaceRoot() (string, bool)

	// ExtensionRoot returns the install directory of an installed extension
	ExtensionRoot(extensionID string) (string, bool)
}

// Prompter asks the user for input.
// An empty answer means the prompt was cancelled.
type Prompter interface {
	RequestInput(ctx context.Context, label string) (string, error)
}

// Notifier surfaces messages to the user
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// StatusReporter is implemented by notifiers that can show requirement status
type StatusReporter interface {
	Status(requirement string, available bool)
}

// Settings exposes user preferences that must be read at call time
type Settings interface {
	DefaultNotificationsDisabled() bool
}
