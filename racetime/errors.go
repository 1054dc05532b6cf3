package racetime

import (
	"errors"
	"fmt"
	"strings"
)

// Protocol errors from the room-creation response. Match with errors.Is.
var (
	// ErrMissingLocationHeader indicates the startrace response did not
	// include a location header.
	ErrMissingLocationHeader = errors.New("the startrace response did not include a location header")

	// ErrInvalidLocationHeader indicates the location header value was
	// not valid text.
	ErrInvalidLocationHeader = errors.New("the startrace location header was not valid text")

	// ErrLocationFormat indicates the location header did not have the
	// expected /{category}/{slug} shape.
	ErrLocationFormat = errors.New("the startrace location header did not have the expected format")

	// ErrLocationCategory indicates the startrace location did not match
	// the input category.
	ErrLocationCategory = errors.New("the startrace location did not match the input category")
)

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error at %s: status %d", e.URL, e.StatusCode)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// ServerError aggregates application-level error messages reported by
// the service in a structured failure response.
type ServerError struct {
	Messages []string
}

// Error implements the error interface, rendering one bullet per message.
func (e *ServerError) Error() string {
	var b strings.Builder
	b.WriteString("server errors:")
	for _, msg := range e.Messages {
		b.WriteString("\n• ")
		b.WriteString(msg)
	}
	return b.String()
}
