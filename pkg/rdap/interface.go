// Package rdap defines the interface and error taxonomy for registry lookups:
// querying an RDAP endpoint for a domain name and turning the response into a
// canonical registration snapshot.
package rdap

import (
	"context"

	"domainwatch/pkg/domain"
)

// Client is the abstraction over the registry lookup protocol. Implementations
// query a single endpoint for one domain name and classify failures with the
// kinds declared in this package.
//
//go:generate mockgen -package mockrdap -source=interface.go -destination=mock/mockrdap.go *
type Client interface {
	// Lookup queries the RDAP endpoint (a base URL ending in a slash) for the
	// given fully-qualified LDH domain name and returns the parsed snapshot.
	// Errors are classified as ErrTransport, ErrProtocol (carrying a
	// StatusError) or ErrParse.
	Lookup(ctx context.Context, endpoint string, fqdn string) (*domain.Snapshot, error)
}
