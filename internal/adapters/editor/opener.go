package editor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"didact/internal/ports"
)

// ErrNoEditor is returned when neither configuration nor the environment
// names an editor and none of the fallbacks is installed
var ErrNoEditor = errors.New("no editor found: set $EDITOR")

var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener opens tutorial sources in a terminal editor. The editor setting
// may carry flags, e.g. "code --wait".
type Opener struct {
	Editor string
}

var _ ports.FileOpener = (*Opener)(nil)

// NewOpener creates an opener; an empty editor defers to $VISUAL and $EDITOR
func NewOpener(editor string) *Opener {
	return &Opener{Editor: editor}
}

// OpenFile runs the editor on path and waits for it to exit
func (o *Opener) OpenFile(ctx context.Context, path string) error {
	cmd, err := o.Command(ctx, path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the editor process attached to the terminal, for callers
// that run it themselves (tea.ExecProcess)
func (o *Opener) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	argv := o.editorArgs()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}
	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd, nil
}

// editorArgs splits the first configured editor into program and flags
func (o *Opener) editorArgs() []string {
	for _, candidate := range []string{o.Editor, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if argv := strings.Fields(candidate); len(argv) > 0 {
			return argv
		}
	}
	for _, name := range fallbackEditors {
		if path, err := exec.LookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
