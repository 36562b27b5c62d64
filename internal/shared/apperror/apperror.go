// Package apperror defines the typed errors shared by the gateway features and
// their mapping to HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Unknown is the zero Kind; it maps to 500.
	Unknown Kind = iota
	// MissingParameter means the client request is incomplete.
	MissingParameter
	// MissingCredential means an upstream credential is not configured on the server.
	MissingCredential
	// UpstreamFetch means the statistical provider call or its transformation failed.
	UpstreamFetch
	// ProxyTransport means the price provider could not be reached at the transport level.
	ProxyTransport
)

func (k Kind) String() string {
	switch k {
	case MissingParameter:
		return "MissingParameter"
	case MissingCredential:
		return "MissingCredential"
	case UpstreamFetch:
		return "UpstreamFetchError"
	case ProxyTransport:
		return "ProxyTransportError"
	default:
		return "Unknown"
	}
}

// Error is an application error with a client-facing message and an optional detail.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// DetailText returns the explicit detail, falling back to the wrapped cause's message.
func (e *Error) DetailText() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// HTTPStatus returns the status code the error is reported with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case MissingParameter:
		return http.StatusBadRequest
	case ProxyTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New returns an Error of the given kind without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns an Error of the given kind wrapping err.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// ResponseError is returned by an upstream client when the provider answers with an
// HTTP error status. Body keeps the raw reply for server-side logs only.
type ResponseError struct {
	Provider   string
	StatusCode int
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s http %d", e.Provider, e.StatusCode)
}
