package application

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"didact/internal/domain"
)

func TestLinkHandler_EndToEnd(t *testing.T) {
	commands := newFakeCommands("test")
	notifier := &fakeNotifier{}
	handler := NewLinkHandler(&Host{Commands: commands, Notifier: notifier})

	outcome, err := handler.Handle(context.Background(), "didact://?commandId=test&number=2")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !outcome.Succeeded() {
		t.Fatalf("expected success, got %v", outcome.Err)
	}
	if len(commands.calls) != 1 {
		t.Fatalf("expected exactly one call, got %d", len(commands.calls))
	}
	if call := commands.calls[0]; call.id != "test" || !reflect.DeepEqual(call.args, []any{float64(2)}) {
		t.Errorf("call = %#v, want test(2)", call)
	}
	if !reflect.DeepEqual(notifier.infos, []string{DefaultCompletionMessage("test")}) {
		t.Errorf("infos = %v", notifier.infos)
	}
}

func TestLinkHandler_MissingCommandIDDispatchesNothing(t *testing.T) {
	commands := newFakeCommands("test")
	notifier := &fakeNotifier{}
	handler := NewLinkHandler(&Host{Commands: commands, Notifier: notifier})

	outcome, err := handler.Handle(context.Background(), "didact://?text=hello")
	if !errors.Is(err, domain.ErrMissingCommandID) {
		t.Fatalf("expected ErrMissingCommandID, got %v", err)
	}
	if outcome != nil {
		t.Errorf("expected no outcome, got %+v", outcome)
	}
	if len(commands.calls) != 0 || len(notifier.errors) != 0 || len(notifier.infos) != 0 {
		t.Errorf("expected no side effects, got calls=%v notes=%v/%v", commands.calls, notifier.infos, notifier.errors)
	}
}

func TestLinkHandler_ResolvedPathComesFirst(t *testing.T) {
	commands := newFakeCommands("vscode.open")
	handler := NewLinkHandler(&Host{
		Commands:  commands,
		Notifier:  &fakeNotifier{},
		Workspace: &fakeWorkspace{root: t.TempDir()},
	})

	outcome, err := handler.Handle(context.Background(), "didact://?commandId=vscode.open&projectFilePath=a.txt&text=x")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !outcome.Succeeded() {
		t.Fatalf("unexpected failure: %v", outcome.Err)
	}
	args := commands.calls[0].args
	if len(args) != 2 || !strings.HasSuffix(args[0].(string), "a.txt") || args[1] != "x" {
		t.Errorf("args = %#v", args)
	}
}

func TestLinkHandler_FailuresBecomeNotifications(t *testing.T) {
	tests := []struct {
		name      string
		link      string
		host      func() *Host
		wantErr   error
		wantError string
	}{
		{
			name: "unknown command is rejected before prompting",
			link: "didact://?commandId=nope&user=Name",
			host: func() *Host {
				return &Host{Commands: newFakeCommands("test"), Prompter: &fakePrompter{answers: []string{"never"}}}
			},
			wantErr:   ErrCommandInvocation,
			wantError: "nope",
		},
		{
			name: "no workspace open",
			link: "didact://?commandId=test&projectFilePath=a.txt",
			host: func() *Host {
				return &Host{Commands: newFakeCommands("test"), Workspace: &fakeWorkspace{}}
			},
			wantErr:   ErrNoWorkspaceOpen,
			wantError: "no workspace open",
		},
		{
			name: "cancelled prompt uses custom error message",
			link: "didact://?commandId=test&user=Name&error=Input%20required",
			host: func() *Host {
				return &Host{Commands: newFakeCommands("test"), Prompter: &fakePrompter{}}
			},
			wantErr:   ErrInputAborted,
			wantError: "Input required",
		},
		{
			name: "invalid json",
			link: "didact://?commandId=test&json=%7B",
			host: func() *Host {
				return &Host{Commands: newFakeCommands("test")}
			},
			wantErr:   ErrInvalidJSONArgument,
			wantError: "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.host()
			notifier := &fakeNotifier{}
			h.Notifier = notifier
			commands := h.Commands.(*fakeCommands)

			outcome, err := NewLinkHandler(h).Handle(context.Background(), tt.link)
			if err != nil {
				t.Fatalf("Handle returned error past the dispatch boundary: %v", err)
			}
			if !errors.Is(outcome.Err, tt.wantErr) {
				t.Errorf("outcome.Err = %v, want %v", outcome.Err, tt.wantErr)
			}
			if len(commands.calls) != 0 {
				t.Errorf("expected no invocation, got %v", commands.calls)
			}
			if len(notifier.errors) != 1 || !strings.Contains(notifier.errors[0], tt.wantError) {
				t.Errorf("errors = %v, want one containing %q", notifier.errors, tt.wantError)
			}
			if p, ok := h.Prompter.(*fakePrompter); ok && tt.wantErr == ErrCommandInvocation && len(p.labels) != 0 {
				t.Errorf("prompted for an unknown command: %v", p.labels)
			}
		})
	}
}
