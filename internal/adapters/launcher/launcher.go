package launcher

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Launcher hands URIs to the operating system's default handler
type Launcher struct {
	goos string
}

// New creates a launcher for the running operating system
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// OpenURI opens uri with the desktop's default application
func (l *Launcher) OpenURI(ctx context.Context, uri string) error {
	cmd, err := l.Command(ctx, uri)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the process that opens uri without starting it
func (l *Launcher) Command(ctx context.Context, uri string) (*exec.Cmd, error) {
	switch l.goos {
	case "darwin":
		return exec.CommandContext(ctx, "open", uri), nil
	case "linux", "freebsd", "openbsd":
		return exec.CommandContext(ctx, "xdg-open", uri), nil
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}

// IsExternal reports whether target is a URI the desktop should open
// rather than a file path for the editor
func IsExternal(target string) bool {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" {
		return false
	}
	// Windows drive letters parse as one-letter schemes
	if len(u.Scheme) == 1 {
		return false
	}
	return u.Scheme != "file"
}

// FileURI converts an absolute path into a file:// URI
func FileURI(path string) string {
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return (&url.URL{Scheme: "file", Path: slashed}).String()
}
