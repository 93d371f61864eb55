package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"didact/internal/ports"
)

// SelfExtensionID is the extension id of Didact itself
const SelfExtensionID = "redhat.vscode-didact"

// Workspace implements ports.Workspace on plain directories
type Workspace struct {
	root          string
	extensionRoot string
	extensionsDir string
}

var _ ports.Workspace = (*Workspace)(nil)

// NewWorkspace creates a workspace. root may be empty when no workspace is
// open; extensionsDir holds one directory per installed extension, named
// "<id>" or "<id>-<version>".
func NewWorkspace(root, extensionRoot, extensionsDir string) *Workspace {
	return &Workspace{
		root:          expandHome(root),
		extensionRoot: expandHome(extensionRoot),
		extensionsDir: expandHome(extensionsDir),
	}
}

// WorkspaceRoot returns the open workspace root
func (w *Workspace) WorkspaceRoot() (string, bool) {
	if w.root == "" {
		return "", false
	}
	return w.root, true
}

// ExtensionRoot finds the install directory of an extension.
// When several versions are installed the highest one wins.
func (w *Workspace) ExtensionRoot(extensionID string) (string, bool) {
	if extensionID == "" {
		return "", false
	}
	if extensionID == SelfExtensionID && w.extensionRoot != "" {
		return w.extensionRoot, true
	}
	if w.extensionsDir == "" {
		return "", false
	}

	entries, err := os.ReadDir(w.extensionsDir)
	if err != nil {
		return "", false
	}

	var (
		best        string
		bestVersion string
		exact       string
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.EqualFold(name, extensionID) {
			exact = name
			continue
		}
		version, ok := extensionVersion(name, extensionID)
		if !ok {
			continue
		}
		if best == "" || semver.Compare(version, bestVersion) > 0 {
			best, bestVersion = name, version
		}
	}

	switch {
	case best != "":
		return filepath.Join(w.extensionsDir, best), true
	case exact != "":
		return filepath.Join(w.extensionsDir, exact), true
	default:
		return "", false
	}
}

// extensionVersion extracts the canonical semver of a "<id>-<version>" directory
func extensionVersion(dirName, extensionID string) (string, bool) {
	prefix := strings.ToLower(extensionID) + "-"
	if !strings.HasPrefix(strings.ToLower(dirName), prefix) {
		return "", false
	}
	version := "v" + dirName[len(prefix):]
	if !semver.IsValid(version) {
		return "", false
	}
	return version, true
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
