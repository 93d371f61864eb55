package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"didact/internal/ports"
)

// ErrUnknownCommand is returned when invoking an id nobody registered
var ErrUnknownCommand = errors.New("unknown command")

// Handler runs one command with the positional arguments a link produced
type Handler func(ctx context.Context, args ...any) (any, error)

// Commands is an in-process command registry
type Commands struct {
	mu       sync.RWMutex
	order    []string
	handlers map[string]Handler
}

var _ ports.CommandRegistry = (*Commands)(nil)

// NewCommands creates an empty registry
func NewCommands() *Commands {
	return &Commands{handlers: make(map[string]Handler)}
}

// Register adds a handler. Registering the same id twice is an error.
func (c *Commands) Register(id string, h Handler) error {
	if id == "" || h == nil {
		return fmt.Errorf("command id and handler are required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.handlers[id]; exists {
		return fmt.Errorf("command %q already registered", id)
	}
	c.handlers[id] = h
	c.order = append(c.order, id)
	return nil
}

// ListCommands returns the registered ids in registration order
func (c *Commands) ListCommands(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...), nil
}

// Invoke runs the handler registered under id
func (c *Commands) Invoke(ctx context.Context, id string, args ...any) (any, error) {
	c.mu.RLock()
	h, ok := c.handlers[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return h(ctx, args...)
}
