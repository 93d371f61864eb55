package host

import (
	"fmt"
	"io"
	"sync"

	"didact/internal/adapters/tui/styles"
	"didact/internal/ports"
)

// ConsoleNotifier prints notifications and requirement status to a terminal
type ConsoleNotifier struct {
	mu       sync.Mutex
	out      io.Writer
	statuses map[string]bool
}

var (
	_ ports.Notifier       = (*ConsoleNotifier)(nil)
	_ ports.StatusReporter = (*ConsoleNotifier)(nil)
)

// NewConsoleNotifier creates a notifier writing to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, statuses: make(map[string]bool)}
}

// Info prints an informational message
func (n *ConsoleNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, styles.Success.Render("✓")+" "+msg)
}

// Error prints an error message
func (n *ConsoleNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, styles.ErrorMsg.Render("✗")+" "+msg)
}

// Status records and prints the availability of a requirement
func (n *ConsoleNotifier) Status(requirement string, available bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statuses[requirement] = available
	fmt.Fprintf(n.out, "%s %s\n", styles.InputLabel.Render(requirement+":"), styles.StatusLabel(available))
}

// Statuses returns the last reported status of every requirement
func (n *ConsoleNotifier) Statuses() map[string]bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	result := make(map[string]bool, len(n.statuses))
	for k, v := range n.statuses {
		result[k] = v
	}
	return result
}
