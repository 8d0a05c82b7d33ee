package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed API call for the caller's error handling:
// redirect on auth failures, retry affordance on network failures, and
// verbatim message display for everything else.
type Kind int

const (
	// KindNetwork is a transport failure; no response was received.
	KindNetwork Kind = iota + 1
	// KindClientValidation is a pre-flight check that failed before any
	// request was sent.
	KindClientValidation
	// KindValidation is a 400-class rejection from the server.
	KindValidation
	// KindAuth is a 401/403; the caller should redirect to sign-in.
	KindAuth
	// KindNotFound is a 404; the entity vanished server-side.
	KindNotFound
	// KindServer is a 5xx failure.
	KindServer
)

const (
	networkMessage = "unable to reach server"
	genericMessage = "request failed"
)

// Error is a classified API failure. Message is safe to show to the user;
// server-provided messages are passed through verbatim.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewClientValidation reports a pre-flight failure; no request was issued.
func NewClientValidation(message string) *Error {
	return &Error{Kind: KindClientValidation, Message: message}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: networkMessage, Err: err}
}

func statusError(status int, message string) *Error {
	if message == "" {
		message = genericMessage
	}
	kind := KindValidation
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= 500:
		kind = KindServer
	}
	return &Error{Kind: kind, Status: status, Message: message}
}

// KindOf returns the classification of err, or 0 when err is not an API error.
func KindOf(err error) Kind {
	if e, ok := asError(err); ok {
		return e.Kind
	}
	return 0
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

// IsValidation reports whether err is a server-side validation rejection.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsAuth reports whether err requires a redirect to sign-in.
func IsAuth(err error) bool { return KindOf(err) == KindAuth }

// IsNotFound reports whether the target entity no longer exists.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsClientValidation reports whether err was raised before any request.
func IsClientValidation(err error) bool { return KindOf(err) == KindClientValidation }

func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
