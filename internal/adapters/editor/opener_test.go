package editor

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestOpener_EditorArgs(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		visualEnv  string
		editorEnv  string
		want       []string
	}{
		{name: "configured editor wins", configured: "hx", editorEnv: "vim", want: []string{"hx"}},
		{name: "VISUAL before EDITOR", visualEnv: "code --wait", editorEnv: "vim", want: []string{"code", "--wait"}},
		{name: "EDITOR", editorEnv: "vim", want: []string{"vim"}},
		{name: "blank setting is skipped", configured: "   ", editorEnv: "nano", want: []string{"nano"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visualEnv)
			t.Setenv("EDITOR", tt.editorEnv)
			if got := NewOpener(tt.configured).editorArgs(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("editorArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpener_Command(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true --flag")

	cmd, err := NewOpener("").Command(context.Background(), "/tmp/demo.didact.md")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	want := []string{"true", "--flag", "/tmp/demo.didact.md"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("args = %v, want %v", cmd.Args, want)
	}
}

func TestOpener_NoEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	t.Setenv("PATH", t.TempDir())

	if _, err := NewOpener("").Command(context.Background(), "x.md"); !errors.Is(err, ErrNoEditor) {
		t.Errorf("err = %v, want ErrNoEditor", err)
	}
}
