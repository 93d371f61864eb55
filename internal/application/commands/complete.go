package commands

import (
	"context"

	"didact/internal/application"
	"didact/internal/domain"
)

// CompleteResult contains the candidates for one completion request
type CompleteResult struct {
	Format     domain.DocumentFormat
	Candidates []domain.CompletionCandidate
}

// CompleteCommand asks the completion engine for candidates at a cursor
type CompleteCommand struct {
	engine   *application.CompletionEngine
	FileName string
	Line     string
	Cursor   int // byte offset in Line; negative means end of line
}

// NewCompleteCommand creates a new CompleteCommand
func NewCompleteCommand(engine *application.CompletionEngine, fileName, line string, cursor int) *CompleteCommand {
	return &CompleteCommand{
		engine:   engine,
		FileName: fileName,
		Line:     line,
		Cursor:   cursor,
	}
}

// Validate checks that the file name selects a supported format
func (c *CompleteCommand) Validate() error {
	return application.ValidateDocumentName("fileName", c.FileName)
}

// Execute runs the completion
func (c *CompleteCommand) Execute(ctx context.Context) (*CompleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cursor := c.Cursor
	if cursor < 0 {
		cursor = len(c.Line)
	}
	format := domain.FormatForPath(c.FileName)
	candidates, err := c.engine.Complete(ctx, format, c.Line, cursor)
	if err != nil {
		return nil, err
	}
	return &CompleteResult{Format: format, Candidates: candidates}, nil
}
