package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for link parsing
var (
	ErrMissingCommandID  = errors.New("missing commandId")
	ErrUnsupportedScheme = errors.New("unsupported link scheme")
)

// ParseError reports a link that could not be turned into an invocation
type ParseError struct {
	Link   string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse link %q: %v", e.Link, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}
