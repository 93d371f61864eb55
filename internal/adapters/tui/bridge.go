package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"didact/internal/adapters/tui/views"
	"didact/internal/ports"
)

// PromptRequestMsg asks the running app to show a prompt.
// The answer, empty when cancelled, is delivered on Reply.
type PromptRequestMsg struct {
	Label string
	Reply chan<- string
}

// Bridge connects the host ports to a running bubbletea program.
// Before a program is attached, prompts run as a standalone program and
// notifications are dropped.
type Bridge struct {
	mu       sync.Mutex
	program  *tea.Program
	statuses map[string]bool

	// PromptOutput receives standalone prompts; stderr when nil
	PromptOutput io.Writer
}

var (
	_ ports.Prompter       = (*Bridge)(nil)
	_ ports.Notifier       = (*Bridge)(nil)
	_ ports.StatusReporter = (*Bridge)(nil)
	_ io.Writer            = (*Bridge)(nil)
)

// NewBridge creates an unattached bridge
func NewBridge() *Bridge {
	return &Bridge{statuses: make(map[string]bool)}
}

// Attach routes prompts and notifications through p
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// Send delivers msg to the attached program, if any
func (b *Bridge) Send(msg tea.Msg) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (b *Bridge) attached() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.program != nil
}

// RequestInput shows a prompt and blocks until it is answered.
// An empty answer means the user cancelled.
func (b *Bridge) RequestInput(ctx context.Context, label string) (string, error) {
	if !b.attached() {
		return b.standalonePrompt(ctx, label)
	}

	reply := make(chan string, 1)
	b.Send(PromptRequestMsg{Label: label, Reply: reply})
	select {
	case answer := <-reply:
		return answer, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (b *Bridge) standalonePrompt(ctx context.Context, label string) (string, error) {
	out := b.PromptOutput
	if out == nil {
		out = os.Stderr
	}

	model := views.NewPromptModel(views.PromptUserInput, "Didact needs input", label, "")
	model.Standalone = true
	final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", label, err)
	}
	answer := final.(*views.PromptModel).Answer()
	if answer.Cancelled {
		return "", nil
	}
	return answer.Value, nil
}

// Info shows an informational message in the app
func (b *Bridge) Info(msg string) {
	b.Send(views.NotifyMsg{Text: msg})
}

// Error shows an error message in the app
func (b *Bridge) Error(msg string) {
	b.Send(views.NotifyMsg{Text: msg, IsErr: true})
}

// Status records a requirement status and shows it in the app
func (b *Bridge) Status(requirement string, available bool) {
	b.mu.Lock()
	b.statuses[requirement] = available
	b.mu.Unlock()
	b.Send(views.StatusMsg{Requirement: requirement, Available: available})
}

// Statuses returns the last reported status of every requirement
func (b *Bridge) Statuses() map[string]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make(map[string]bool, len(b.statuses))
	for k, v := range b.statuses {
		result[k] = v
	}
	return result
}

// Write shows terminal output of built-in commands, one message per line
func (b *Bridge) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			b.Info(line)
		}
	}
	return len(p), nil
}
