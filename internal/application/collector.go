package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"didact/internal/domain"
	"didact/internal/ports"
)

// InputCollector assembles the positional arguments of a link
type InputCollector struct {
	prompter ports.Prompter
}

// NewInputCollector creates a collector prompting through the host
func NewInputCollector(h *Host) *InputCollector {
	return &InputCollector{prompter: h.Prompter}
}

// Collect builds the argument list in the fixed order
// [path] [text segments | user answers] [number] [json].
//
// User prompts run one at a time in label order. Cancelling any prompt
// returns an *InputAbortedError and no arguments at all.
func (c *InputCollector) Collect(ctx context.Context, inv *domain.LinkInvocation, resolvedPath string, hasPath bool) ([]any, error) {
	var args []any

	if hasPath {
		args = append(args, resolvedPath)
	}

	switch {
	case len(inv.Text) > 0:
		for _, segment := range inv.Text {
			args = append(args, segment)
		}
	case len(inv.User) > 0:
		answers, err := c.promptAll(ctx, inv.User)
		if err != nil {
			return nil, err
		}
		args = append(args, answers...)
	}

	if inv.Number != "" {
		n, err := strconv.ParseFloat(strings.TrimSpace(inv.Number), 64)
		if err != nil {
			return nil, &ArgumentError{Field: "number", Value: inv.Number, Err: err}
		}
		args = append(args, n)
	}

	if inv.JSON != "" {
		var value any
		if err := json.Unmarshal([]byte(inv.JSON), &value); err != nil {
			return nil, &ArgumentError{Field: "json", Value: inv.JSON, Err: err}
		}
		args = append(args, value)
	}

	return args, nil
}

func (c *InputCollector) promptAll(ctx context.Context, labels []string) ([]any, error) {
	answers := make([]any, 0, len(labels))
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return nil, &InputAbortedError{Label: label}
		}
		if c.prompter == nil {
			return nil, &InputAbortedError{Label: label}
		}
		answer, err := c.prompter.RequestInput(ctx, label)
		if err != nil || answer == "" {
			return nil, &InputAbortedError{Label: label}
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
