package application

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"didact/internal/domain"
	"didact/internal/ports"
)

// LinkHandler runs the whole pipeline for a clicked link:
// parse, validate, resolve, collect, dispatch.
type LinkHandler struct {
	commands   ports.CommandRegistry
	resolver   *PathResolver
	collector  *InputCollector
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewLinkHandler creates a link handler for the given host
func NewLinkHandler(h *Host) *LinkHandler {
	return &LinkHandler{
		commands:   h.Commands,
		resolver:   NewPathResolver(h),
		collector:  NewInputCollector(h),
		dispatcher: NewDispatcher(h),
		logger:     h.logger(),
	}
}

// Handle processes one link.
//
// Parse failures are returned without any notification so the caller can
// decide what to show. Everything after parsing is reported through the
// notifier and recorded in the returned outcome; nothing else is returned
// as an error.
func (lh *LinkHandler) Handle(ctx context.Context, rawLink string) (*Outcome, error) {
	inv, err := domain.ParseLink(rawLink)
	if err != nil {
		return nil, err
	}
	return lh.Run(ctx, inv), nil
}

// Run executes an already parsed invocation
func (lh *LinkHandler) Run(ctx context.Context, inv *domain.LinkInvocation) *Outcome {
	outcome := &Outcome{CommandID: inv.CommandID}

	if err := lh.validateCommand(ctx, inv.CommandID); err != nil {
		outcome.Err = err
		lh.dispatcher.Fail(inv.ErrorMessage, DefaultErrorMessage(inv.CommandID, nil, err))
		return outcome
	}

	path, hasPath, err := lh.resolver.Resolve(inv)
	if err != nil {
		lh.logger.Warn("path resolution failed",
			zap.String("kind", inv.PathKind.String()),
			zap.String("path", inv.Path),
			zap.Error(err))
		outcome.Err = err
		lh.dispatcher.Fail(inv.ErrorMessage, DefaultErrorMessage(inv.CommandID, nil, err))
		return outcome
	}

	args, err := lh.collector.Collect(ctx, inv, path, hasPath)
	if err != nil {
		outcome.Err = err
		lh.dispatcher.Fail(inv.ErrorMessage, DefaultAbortMessage(inv.CommandID, err))
		return outcome
	}

	return lh.dispatcher.Dispatch(ctx, inv.CommandID, args, inv.CompletionMessage, inv.ErrorMessage)
}

// validateCommand checks the id against the live registry before any prompt is shown
func (lh *LinkHandler) validateCommand(ctx context.Context, commandID string) error {
	if lh.commands == nil {
		return &CommandInvocationError{CommandID: commandID, Err: fmt.Errorf("no command registry")}
	}
	ids, err := lh.commands.ListCommands(ctx)
	if err != nil {
		return &CommandInvocationError{CommandID: commandID, Err: err}
	}
	if !slices.Contains(ids, commandID) {
		return &CommandInvocationError{CommandID: commandID, Err: fmt.Errorf("%w: %q", ErrNotFound, commandID)}
	}
	return nil
}
