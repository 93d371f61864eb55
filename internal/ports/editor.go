package ports

import (
	"context"
	"os/exec"
)

// FileOpener opens resolved files for the user (the vscode.open command)
type FileOpener interface {
	// OpenFile opens path in the user's editor and waits for it to exit
	OpenFile(ctx context.Context, path string) error

	// Command returns the editor process without starting it,
	// so the TUI can hand the terminal over with tea.ExecProcess
	Command(ctx context.Context, path string) (*exec.Cmd, error)
}
