package commands

import (
	"context"
	"strings"

	"didact/internal/application"
	"didact/internal/domain"
)

// ParseLinkCommand parses a link without running it
type ParseLinkCommand struct {
	Link string
}

// NewParseLinkCommand creates a new ParseLinkCommand
func NewParseLinkCommand(link string) *ParseLinkCommand {
	return &ParseLinkCommand{Link: link}
}

// Validate checks that Link looks like a Didact link
func (c *ParseLinkCommand) Validate() error {
	return application.ValidateLink("link", c.Link)
}

// Execute parses the link
func (c *ParseLinkCommand) Execute(ctx context.Context) (*domain.LinkInvocation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return domain.ParseLink(strings.TrimSpace(c.Link))
}

// RunLinkCommand parses a link and dispatches it through the link handler
type RunLinkCommand struct {
	handler *application.LinkHandler
	Link    string
}

// NewRunLinkCommand creates a new RunLinkCommand
func NewRunLinkCommand(handler *application.LinkHandler, link string) *RunLinkCommand {
	return &RunLinkCommand{
		handler: handler,
		Link:    link,
	}
}

// Validate checks that Link looks like a Didact link
func (c *RunLinkCommand) Validate() error {
	return application.ValidateLink("link", c.Link)
}

// Execute runs the link. Only parse failures are returned as errors;
// everything past parsing is reported in the outcome.
func (c *RunLinkCommand) Execute(ctx context.Context) (*application.Outcome, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.handler.Handle(ctx, c.Link)
}
