package domain

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the closed set of failure categories the services
// produce. Propagation boundaries switch on the kind instead of matching on
// concrete error values.
type ErrorKind string

const (
	// KindAuthentication: the caller is not logged in for an operation that
	// requires identity. Never silently swallowed, even on degrading paths.
	KindAuthentication ErrorKind = "authentication"
	// KindNotFound: a required single entity does not exist in the store.
	KindNotFound ErrorKind = "not_found"
	// KindAPI: the store answered a critical call with a non-success status.
	KindAPI ErrorKind = "api"
	// KindConfiguration: required configuration is missing. Fatal at startup.
	KindConfiguration ErrorKind = "configuration"
	// KindUnknown: anything that is not one of the tagged kinds above.
	KindUnknown ErrorKind = "unknown"
)

// Error is the single error type crossing service boundaries.
type Error struct {
	Kind     ErrorKind
	Message  string
	Resource string // not-found: "Post" or "User"
	ID       string // not-found: the missing entity id
	Status   int    // api: HTTP status returned by the store
	Endpoint string // api: the store endpoint that failed
}

func (e *Error) Error() string {
	return e.Message
}

// NewAuthenticationError reports a missing or invalid caller identity.
func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewNotFoundError reports a missing entity. Resource is the capitalized
// entity name used in user-facing messages, e.g. "Post" or "User".
func NewNotFoundError(resource, id string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Resource: resource,
		ID:       id,
		Message:  fmt.Sprintf("%s with id '%s' not found", resource, id),
	}
}

// NewAPIError reports a non-success response from the remote store.
func NewAPIError(message string, status int, endpoint string) *Error {
	return &Error{Kind: KindAPI, Message: message, Status: status, Endpoint: endpoint}
}

// NewConfigurationError reports missing required configuration.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// KindOf extracts the kind from any error. Errors that are not a *Error are
// classified as KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// APIStatus returns the store HTTP status carried by err, or 0 when err is
// not an API error.
func APIStatus(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.Status
	}
	return 0
}
