package commands

import (
	"context"
	"fmt"

	"didact/internal/application"
)

// RegisterTutorialResult contains the result of registering a tutorial
type RegisterTutorialResult struct {
	Name     string
	Category string
	Message  string
}

// RegisterTutorialCommand adds a tutorial to the registry
type RegisterTutorialCommand struct {
	registry  *application.TutorialRegistry
	Name      string
	SourceURI string
	Category  string
}

// NewRegisterTutorialCommand creates a new RegisterTutorialCommand
func NewRegisterTutorialCommand(registry *application.TutorialRegistry, name, sourceURI, category string) *RegisterTutorialCommand {
	return &RegisterTutorialCommand{
		registry:  registry,
		Name:      name,
		SourceURI: sourceURI,
		Category:  category,
	}
}

// Validate checks if the register operation is valid
func (c *RegisterTutorialCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("sourceURI", c.SourceURI); err != nil {
		return err
	}
	return application.ValidateRequired("category", c.Category)
}

// Execute runs the register command
func (c *RegisterTutorialCommand) Execute(ctx context.Context) (*RegisterTutorialResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.registry.Register(ctx, c.Name, c.SourceURI, c.Category); err != nil {
		return nil, fmt.Errorf("failed to register tutorial: %w", err)
	}

	return &RegisterTutorialResult{
		Name:     c.Name,
		Category: c.Category,
		Message:  fmt.Sprintf("Registered tutorial: %s (%s)", c.Name, c.Category),
	}, nil
}

// UnregisterTutorialCommand removes one tutorial from the registry
type UnregisterTutorialCommand struct {
	registry *application.TutorialRegistry
	Name     string
	Category string
}

// NewUnregisterTutorialCommand creates a new UnregisterTutorialCommand
func NewUnregisterTutorialCommand(registry *application.TutorialRegistry, name, category string) *UnregisterTutorialCommand {
	return &UnregisterTutorialCommand{
		registry: registry,
		Name:     name,
		Category: category,
	}
}

// Validate checks if the unregister operation is valid
func (c *UnregisterTutorialCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateRequired("category", c.Category)
}

// Execute runs the unregister command
func (c *UnregisterTutorialCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if err := c.registry.Unregister(ctx, c.Name, c.Category); err != nil {
		return "", fmt.Errorf("failed to unregister tutorial: %w", err)
	}
	return fmt.Sprintf("Unregistered tutorial: %s (%s)", c.Name, c.Category), nil
}

// UnregisterAllCommand clears the registry
type UnregisterAllCommand struct {
	registry *application.TutorialRegistry
}

// NewUnregisterAllCommand creates a new UnregisterAllCommand
func NewUnregisterAllCommand(registry *application.TutorialRegistry) *UnregisterAllCommand {
	return &UnregisterAllCommand{registry: registry}
}

// Execute runs the unregister-all command
func (c *UnregisterAllCommand) Execute(ctx context.Context) (string, error) {
	if err := c.registry.UnregisterAll(ctx); err != nil {
		return "", fmt.Errorf("failed to clear registry: %w", err)
	}
	return "Cleared all registered tutorials", nil
}
