package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"didact/internal/domain"
	"didact/internal/ports"
)

// PathResolver turns the path field of a link into an absolute path.
// It never touches the filesystem; whoever opens the file checks existence.
type PathResolver struct {
	workspace     ports.Workspace
	extensionRoot string
}

// NewPathResolver creates a resolver for the given host
func NewPathResolver(h *Host) *PathResolver {
	return &PathResolver{workspace: h.Workspace, extensionRoot: h.ExtensionRoot}
}

// Resolve dispatches on the link's path kind. ok is false when the link has no path.
func (r *PathResolver) Resolve(inv *domain.LinkInvocation) (path string, ok bool, err error) {
	switch inv.PathKind {
	case domain.PathProject:
		path, err = r.ResolveProjectPath(inv.Path)
	case domain.PathSource:
		path, err = r.ResolveSourcePath(inv.Path, r.extensionRoot)
	case domain.PathExtension:
		path, err = r.ResolveExtensionPath(inv.Path)
	default:
		return "", false, nil
	}
	if err != nil {
		return "", true, err
	}
	return path, true, nil
}

// ResolveProjectPath joins relPath against the first workspace root
func (r *PathResolver) ResolveProjectPath(relPath string) (string, error) {
	if r.workspace == nil {
		return "", &ResolveError{Path: relPath, Reason: ErrNoWorkspaceOpen}
	}
	root, ok := r.workspace.WorkspaceRoot()
	if !ok || root == "" {
		return "", &ResolveError{Path: relPath, Reason: ErrNoWorkspaceOpen}
	}
	return joinPath(root, relPath), nil
}

// ResolveSourcePath joins relPath against the extension's install root
func (r *PathResolver) ResolveSourcePath(relPath, extensionInstallRoot string) (string, error) {
	if extensionInstallRoot == "" {
		return "", &ResolveError{Path: relPath, Reason: fmt.Errorf("%w: extension root not configured", ErrExtensionNotFound)}
	}
	return joinPath(extensionInstallRoot, relPath), nil
}

// ResolveExtensionPath resolves "<extensionId>/<relative/path>" against the
// install root of the named extension
func (r *PathResolver) ResolveExtensionPath(compoundPath string) (string, error) {
	extensionID, relPath, _ := strings.Cut(compoundPath, "/")
	if r.workspace == nil || extensionID == "" {
		return "", &ResolveError{Path: compoundPath, Reason: ErrExtensionNotFound}
	}
	root, ok := r.workspace.ExtensionRoot(extensionID)
	if !ok {
		return "", &ResolveError{Path: compoundPath, Reason: fmt.Errorf("%w: %s", ErrExtensionNotFound, extensionID)}
	}
	return joinPath(root, relPath), nil
}

func joinPath(root, relPath string) string {
	path := filepath.Join(root, filepath.FromSlash(relPath))
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
