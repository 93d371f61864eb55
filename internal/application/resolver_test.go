package application

import (
	"errors"
	"path/filepath"
	"testing"

	"didact/internal/domain"
)

func TestPathResolver_Resolve(t *testing.T) {
	workspace := &fakeWorkspace{
		root:       "/ws",
		extensions: map[string]string{"redhat.vscode-didact": "/ext/didact"},
	}
	resolver := NewPathResolver(&Host{Workspace: workspace, ExtensionRoot: "/self"})

	tests := []struct {
		name     string
		link     string
		wantPath string
		wantOK   bool
		wantErr  error
	}{
		{
			name:     "project path",
			link:     "didact://?commandId=c&projectFilePath=src/main.go",
			wantPath: filepath.FromSlash("/ws/src/main.go"),
			wantOK:   true,
		},
		{
			name:     "source path",
			link:     "didact://?commandId=c&srcFilePath=demos/intro.md",
			wantPath: filepath.FromSlash("/self/demos/intro.md"),
			wantOK:   true,
		},
		{
			name:     "extension path",
			link:     "didact://?commandId=c&extFilePath=redhat.vscode-didact/demos/a%20b.md",
			wantPath: filepath.FromSlash("/ext/didact/demos/a b.md"),
			wantOK:   true,
		},
		{
			name:    "unknown extension",
			link:    "didact://?commandId=c&extFilePath=nobody.nothing/x.md",
			wantOK:  true,
			wantErr: ErrExtensionNotFound,
		},
		{
			name:   "no path",
			link:   "didact://?commandId=c",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := domain.ParseLink(tt.link)
			if err != nil {
				t.Fatalf("ParseLink: %v", err)
			}
			path, ok, err := resolver.Resolve(inv)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantOK && filepath.ToSlash(path) != filepath.ToSlash(mustAbs(t, tt.wantPath)) {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func TestPathResolver_NoWorkspaceOpen(t *testing.T) {
	resolver := NewPathResolver(&Host{Workspace: &fakeWorkspace{}})
	_, err := resolver.ResolveProjectPath("a.txt")
	if !errors.Is(err, ErrNoWorkspaceOpen) {
		t.Errorf("expected ErrNoWorkspaceOpen, got %v", err)
	}

	resolver = NewPathResolver(&Host{})
	if _, err := resolver.ResolveProjectPath("a.txt"); !errors.Is(err, ErrNoWorkspaceOpen) {
		t.Errorf("expected ErrNoWorkspaceOpen without workspace, got %v", err)
	}
}

func TestPathResolver_ExtensionPathWithoutRemainder(t *testing.T) {
	workspace := &fakeWorkspace{extensions: map[string]string{"pub.ext": "/ext/pub"}}
	resolver := NewPathResolver(&Host{Workspace: workspace})

	path, err := resolver.ResolveExtensionPath("pub.ext")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.ToSlash(path) != filepath.ToSlash(mustAbs(t, "/ext/pub")) {
		t.Errorf("path = %q, want extension root", path)
	}
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Abs(%q): %v", path, err)
	}
	return abs
}
