package rdap

import (
	"errors"
	"fmt"

	"domainwatch/pkg/serrors"
)

// Lookup failures carry exactly one of these kinds. The split is load-bearing:
// the scheduler notifies the watchlist owner on protocol errors but silently
// skips the domain on transport and parse errors.
var (
	// ErrTransport marks failures below the protocol layer: connection
	// refused, DNS resolution, timeouts.
	ErrTransport = serrors.NewKind("LOOKUP_TRANSPORT")
	// ErrProtocol marks a well-formed response signaling failure, e.g. a 404
	// for an unregistered domain or a 5xx from the registry. The wrapped
	// cause is a *StatusError.
	ErrProtocol = serrors.NewKind("LOOKUP_PROTOCOL")
	// ErrParse marks a malformed or unexpected response body.
	ErrParse = serrors.NewKind("LOOKUP_PARSE")
)

// StatusError is the concrete cause behind ErrProtocol, preserving the HTTP
// status code the registry answered with.
type StatusError struct {
	// StatusCode is the HTTP status of the failure response.
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("registry returned status %d", e.StatusCode)
}

// StatusCode extracts the protocol status code from an error chain. The
// second return is false when no StatusError is present.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}

	return 0, false
}
