package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"didact/internal/application"
)

// DefaultCategory is the category the bundled tutorials are registered under
const DefaultCategory = "Didact"

// DefaultTutorial is a tutorial shipped with the extension
type DefaultTutorial struct {
	Name         string
	RelativePath string // relative to the extension root
}

// DefaultTutorials are registered on first start
var DefaultTutorials = []DefaultTutorial{
	{Name: "Didact Demo", RelativePath: "demos/markdown/didact-demo.didact.md"},
}

// SeedDefaultsCommand registers the bundled tutorials, skipping any that are
// already present
type SeedDefaultsCommand struct {
	registry      *application.TutorialRegistry
	ExtensionRoot string
}

// NewSeedDefaultsCommand creates a new SeedDefaultsCommand
func NewSeedDefaultsCommand(registry *application.TutorialRegistry, extensionRoot string) *SeedDefaultsCommand {
	return &SeedDefaultsCommand{
		registry:      registry,
		ExtensionRoot: extensionRoot,
	}
}

// Execute registers the defaults and returns the names that were added
func (c *SeedDefaultsCommand) Execute(ctx context.Context) ([]string, error) {
	var added []string
	for _, t := range DefaultTutorials {
		uri := "file://" + filepath.ToSlash(filepath.Join(c.ExtensionRoot, t.RelativePath))
		err := c.registry.Register(ctx, t.Name, uri, DefaultCategory)
		if errors.Is(err, application.ErrDuplicateEntry) {
			continue
		}
		if err != nil {
			return added, fmt.Errorf("failed to seed %s: %w", t.Name, err)
		}
		added = append(added, t.Name)
	}
	return added, nil
}
