package commands

import (
	"context"

	"didact/internal/application"
	"didact/internal/domain"
)

// ListCategoriesCommand lists the registered categories
type ListCategoriesCommand struct {
	registry *application.TutorialRegistry
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(registry *application.TutorialRegistry) *ListCategoriesCommand {
	return &ListCategoriesCommand{registry: registry}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]string, error) {
	return c.registry.ListCategories(ctx)
}

// ListTutorialsCommand lists the tutorials of one category, or every
// tutorial when Category is empty
type ListTutorialsCommand struct {
	registry *application.TutorialRegistry
	Category string
}

// NewListTutorialsCommand creates a new ListTutorialsCommand
func NewListTutorialsCommand(registry *application.TutorialRegistry, category string) *ListTutorialsCommand {
	return &ListTutorialsCommand{
		registry: registry,
		Category: category,
	}
}

// Execute runs the list tutorials command
func (c *ListTutorialsCommand) Execute(ctx context.Context) ([]domain.TutorialDescriptor, error) {
	if c.Category == "" {
		return c.registry.Tutorials(ctx)
	}
	return c.registry.TutorialsIn(ctx, c.Category)
}

// OutlineTree is a fully expanded outline node
type OutlineTree struct {
	Node     domain.OutlineNode
	Children []*OutlineTree
}

// BuildOutlineCommand expands the whole outline, down to the headings
type BuildOutlineCommand struct {
	outline *application.OutlineProvider
}

// NewBuildOutlineCommand creates a new BuildOutlineCommand
func NewBuildOutlineCommand(outline *application.OutlineProvider) *BuildOutlineCommand {
	return &BuildOutlineCommand{outline: outline}
}

// Execute runs the build outline command and returns the root categories
func (c *BuildOutlineCommand) Execute(ctx context.Context) ([]*OutlineTree, error) {
	return c.expand(ctx, nil)
}

func (c *BuildOutlineCommand) expand(ctx context.Context, parent *domain.OutlineNode) ([]*OutlineTree, error) {
	children, err := c.outline.Children(ctx, parent)
	if err != nil {
		return nil, err
	}
	trees := make([]*OutlineTree, 0, len(children))
	for i := range children {
		tree := &OutlineTree{Node: children[i]}
		if !children[i].IsLeaf() {
			tree.Children, err = c.expand(ctx, &children[i])
			if err != nil {
				// An unreadable tutorial still shows up, just without headings
				if children[i].Kind != domain.NodeTutorial {
					return nil, err
				}
			}
		}
		trees = append(trees, tree)
	}
	return trees, nil
}
