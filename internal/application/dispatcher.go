package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"didact/internal/ports"
)

// Outcome records what happened to one link after it reached the dispatch boundary.
// Err has already been shown to the user; it is kept for callers that report exit status.
type Outcome struct {
	CommandID string
	Args      []any
	Result    any
	Err       error
}

// Succeeded reports whether the command ran without error
func (o *Outcome) Succeeded() bool {
	return o != nil && o.Err == nil
}

// Dispatcher invokes host commands and turns every failure into a notification
type Dispatcher struct {
	commands ports.CommandRegistry
	notifier ports.Notifier
	settings ports.Settings
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher for the given host
func NewDispatcher(h *Host) *Dispatcher {
	return &Dispatcher{
		commands: h.Commands,
		notifier: h.Notifier,
		settings: h.settings(),
		logger:   h.logger(),
	}
}

// Dispatch invokes commandID with args spread as positional parameters.
// It never returns an error: failures are shown through the notifier and
// recorded in the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, commandID string, args []any, completionMessage, errorMessage string) *Outcome {
	outcome := &Outcome{CommandID: commandID, Args: args}

	result, err := d.invoke(ctx, commandID, args)
	if err != nil {
		outcome.Err = &CommandInvocationError{CommandID: commandID, Err: err}
		d.logger.Warn("command failed", zap.String("command", commandID), zap.Error(err))
		d.Fail(errorMessage, DefaultErrorMessage(commandID, args, err))
		return outcome
	}

	outcome.Result = result
	switch {
	case completionMessage != "":
		d.info(completionMessage)
	case !d.settings.DefaultNotificationsDisabled():
		d.info(DefaultCompletionMessage(commandID))
	}
	return outcome
}

// invoke recovers from panicking command handlers so a broken command
// cannot take the process down
func (d *Dispatcher) invoke(ctx context.Context, commandID string, args []any) (result any, err error) {
	if d.commands == nil {
		return nil, fmt.Errorf("no command registry")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return d.commands.Invoke(ctx, commandID, args...)
}

// Fail shows the custom error message when set, otherwise the fallback
func (d *Dispatcher) Fail(custom, fallback string) {
	if d.notifier == nil {
		return
	}
	if custom != "" {
		d.notifier.Error(custom)
		return
	}
	d.notifier.Error(fallback)
}

func (d *Dispatcher) info(msg string) {
	if d.notifier != nil {
		d.notifier.Info(msg)
	}
}

// DefaultCompletionMessage is shown after a successful command without a completion= message
func DefaultCompletionMessage(commandID string) string {
	return fmt.Sprintf("Didact just executed %s", commandID)
}

// DefaultErrorMessage is shown after a failed command without an error= message
func DefaultErrorMessage(commandID string, args []any, cause error) string {
	return fmt.Sprintf("Didact was unable to call commandId %s with args %s: %v", commandID, formatArgs(args), cause)
}

// DefaultAbortMessage is shown when input collection is cancelled
func DefaultAbortMessage(commandID string, cause error) string {
	return fmt.Sprintf("Didact was unable to collect input for %s: %v", commandID, cause)
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
