package voxkit

import (
	"fmt"
)

// Kind is a classification of error type.
type Kind string

const (
	InvalidInput   Kind = "invalid_input"
	Transport      Kind = "transport"
	StatusCode     Kind = "status_code"
	Unsupported    Kind = "unsupported"
	NotImplemented Kind = "not_implemented"
	Invariant      Kind = "invariant"
)

// ModelError represents errors from the speech and lyrics model layer.
type ModelError struct {
	Kind    Kind
	Message string
	Err     error
	// The provider name
	Provider string
	// The status for the StatusCode error kind
	Status int
}

func (e *ModelError) Error() string {
	switch e.Kind {
	case InvalidInput:
		return fmt.Sprintf("invalid input: %s", e.Message)
	case Transport:
		return fmt.Sprintf("transport error: %s", e.Err)
	case StatusCode:
		return fmt.Sprintf("status error: %s (status %d)", e.Message, e.Status)
	case Unsupported:
		return fmt.Sprintf("unsupported by %s: %s", e.Provider, e.Message)
	case NotImplemented:
		return fmt.Sprintf("not implemented for %s: %s", e.Provider, e.Message)
	case Invariant:
		return fmt.Sprintf("invariant from %s: %s", e.Provider, e.Message)
	default:
		return e.Message
	}
}

// Unwrap allows errors.Is / errors.As to work with wrapped errors.
func (e *ModelError) Unwrap() error {
	return e.Err
}

// Helper constructors
func NewInvalidInputError(msg string) *ModelError {
	return &ModelError{Kind: InvalidInput, Message: msg}
}

func NewTransportError(err error) *ModelError {
	return &ModelError{Kind: Transport, Err: err}
}

func NewStatusCodeError(status int, body string) *ModelError {
	return &ModelError{Kind: StatusCode, Message: body, Status: status}
}

func NewUnsupportedError(provider string, msg string) *ModelError {
	return &ModelError{Kind: Unsupported, Message: msg, Provider: provider}
}

func NewNotImplementedError(provider string, msg string) *ModelError {
	return &ModelError{Kind: NotImplemented, Message: msg, Provider: provider}
}

func NewInvariantError(provider string, msg string) *ModelError {
	return &ModelError{Kind: Invariant, Message: msg, Provider: provider}
}
