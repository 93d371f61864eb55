package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoWorkspaceOpen       = errors.New("no workspace open")
	ErrExtensionNotFound     = errors.New("extension not found")
	ErrInputAborted          = errors.New("input aborted")
	ErrInvalidJSONArgument   = errors.New("invalid json argument")
	ErrInvalidNumberArgument = errors.New("invalid number argument")
	ErrDuplicateEntry        = errors.New("duplicate entry")
	ErrCommandInvocation     = errors.New("command invocation failed")
	ErrNotFound              = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ResolveError represents a path that could not be resolved
type ResolveError struct {
	Path   string
	Reason error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Path, e.Reason)
}

func (e *ResolveError) Unwrap() error {
	return e.Reason
}

// InputAbortedError is returned when the user cancels a prompt
type InputAbortedError struct {
	Label string
}

func (e *InputAbortedError) Error() string {
	return fmt.Sprintf("input %q was cancelled", e.Label)
}

func (e *InputAbortedError) Is(target error) bool {
	return target == ErrInputAborted
}

// ArgumentError represents a number= or json= value that does not parse
type ArgumentError struct {
	Field string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s argument %q: %v", e.Field, e.Value, e.Err)
}

func (e *ArgumentError) Is(target error) bool {
	switch e.Field {
	case "json":
		return target == ErrInvalidJSONArgument
	case "number":
		return target == ErrInvalidNumberArgument
	}
	return false
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// DuplicateEntryError represents a tutorial registered twice
type DuplicateEntryError struct {
	Name     string
	Category string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("tutorial %q already registered in category %q", e.Name, e.Category)
}

func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// CommandInvocationError represents a host command that failed or does not exist
type CommandInvocationError struct {
	CommandID string
	Err       error
}

func (e *CommandInvocationError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.CommandID, e.Err)
}

func (e *CommandInvocationError) Is(target error) bool {
	return target == ErrCommandInvocation
}

func (e *CommandInvocationError) Unwrap() error {
	return e.Err
}
