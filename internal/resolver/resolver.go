// Package resolver turns a domain name into a fresh registry snapshot by
// routing the lookup through the TLD directory.
package resolver

import (
	"context"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/rdap"
)

// Router resolves a TLD to an ordered list of registry endpoints.
type Router interface {
	RouteFor(tld string) ([]string, error)
}

// Resolver performs bounded registry lookups for canonical domain names.
type Resolver struct {
	router  Router
	client  rdap.Client
	timeout time.Duration
}

// New creates a Resolver. timeout bounds each individual lookup.
func New(router Router, client rdap.Client, timeout time.Duration) *Resolver {
	return &Resolver{router: router, client: client, timeout: timeout}
}

// Resolve queries the registry responsible for the given canonical domain
// name and returns the parsed snapshot.
//
// Error kinds surfaced to callers: directory.ErrNoRoute for unknown TLDs and
// the rdap transport/protocol/parse kinds for lookup failures.
func (r *Resolver) Resolve(ctx context.Context, name string) (*domain.Snapshot, error) {
	endpoints, err := r.router.RouteFor(domain.TLDOf(name))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// endpoints are ranked, the first one is authoritative. HTTP-level
	// redirects are followed by the underlying client.
	return r.client.Lookup(ctx, endpoints[0], name)
}
