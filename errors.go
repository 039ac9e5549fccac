package powerdns

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrorKind tells where a failed API call broke down.
type ErrorKind int

const (
	// TransportFailure means the request never produced an HTTP response:
	// DNS failure, refused connection, timeout or context cancellation.
	TransportFailure ErrorKind = iota + 1
	// HTTPFailure means the server answered with a non-2xx status.
	HTTPFailure
	// DecodeFailure means the server answered with a 2xx status,
	// but the body could not be decoded into the expected shape.
	DecodeFailure
)

func (k ErrorKind) String() string {
	switch k {
	case TransportFailure:
		return "transport failure"
	case HTTPFailure:
		return "http failure"
	case DecodeFailure:
		return "decode failure"
	default:
		return "unknown failure"
	}
}

// Error is the only error type returned by Transport implementations in this package.
type Error struct {
	Kind ErrorKind
	// HTTP method and path (relative to the base URL) of the failed request.
	Method string
	Path   string
	// StatusCode is zero for TransportFailure.
	StatusCode int
	// Body is the raw response body, if any.
	Body string
	// Message is the "error" field of a JSON error body, if present.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("%s %s", e.Method, e.Path)
	switch {
	case e.Kind == HTTPFailure && e.Message != "":
		return fmt.Sprintf("%s: %d %s: %s", prefix, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	case e.Kind == HTTPFailure && e.Body != "":
		return fmt.Sprintf("%s: %d %s: %s", prefix, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	case e.Kind == HTTPFailure:
		return fmt.Sprintf("%s: %d %s", prefix, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Kind, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", prefix, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is an HTTP 404 returned by the server.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is an HTTP 409 returned by the server,
// for example when creating a zone that already exists.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, code int) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == HTTPFailure && e.StatusCode == code
}
