// Package directory maintains the TLD to registry-endpoint routing table.
//
// The table is persisted in storage and cached in memory as an immutable
// snapshot. Refreshes build a complete replacement and swap it in atomically,
// so readers never observe a partially rebuilt directory.
package directory

import (
	"context"
	"strings"
	"sync/atomic"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/serrors"
	"domainwatch/pkg/storage"
)

// ErrNoRoute is returned by RouteFor when no registry endpoint is known for
// the requested TLD.
var ErrNoRoute = serrors.NewKind("NO_ROUTE")

// routeTable maps a lowercase TLD to its registry endpoints ordered by rank.
type routeTable map[string][]string

// Directory exposes the current TLD routing snapshot and the refresh
// operations that replace it.
type Directory struct {
	strg storage.Storage

	routes atomic.Pointer[routeTable]
}

// New creates a Directory backed by the given storage. The in-memory snapshot
// is empty until Load or one of the replace operations runs.
func New(strg storage.Storage) *Directory {
	d := &Directory{strg: strg}
	d.routes.Store(&routeTable{})

	return d
}

// Load rebuilds the in-memory snapshot from storage and swaps it in.
func (d *Directory) Load(ctx context.Context) error {
	servers, err := d.strg.RdapServers(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not load rdap servers")
	}

	table := make(routeTable, len(servers))
	for _, srv := range servers {
		tld := strings.ToLower(srv.TLD)
		table[tld] = append(table[tld], srv.URL)
	}

	d.routes.Store(&table)

	return nil
}

// RouteFor returns the registry endpoints for the given TLD, best-ranked
// first. The returned slice must not be mutated by the caller.
func (d *Directory) RouteFor(tld string) ([]string, error) {
	table := *d.routes.Load()

	endpoints, ok := table[strings.ToLower(tld)]
	if !ok || len(endpoints) == 0 {
		return nil, serrors.With(ErrNoRoute, "no registry endpoint for TLD %q", tld)
	}

	return endpoints, nil
}

// ReplaceTLDs replaces all TLD rows owned by the given source in a single
// transaction. TLD rows do not affect routing, so no snapshot swap happens.
func (d *Directory) ReplaceTLDs(ctx context.Context, source string, tlds []domain.TLD) error {
	err := d.strg.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.ReplaceTLDs(ctx, source, tlds)
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not replace TLDs")
	}

	return nil
}

// ReplaceRdapServers replaces all endpoint rows owned by the given source in a
// single transaction, then reloads the in-memory snapshot.
func (d *Directory) ReplaceRdapServers(ctx context.Context, source string, servers []domain.RdapServer) error {
	err := d.strg.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.ReplaceRdapServers(ctx, source, servers)
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not replace rdap servers")
	}

	return d.Load(ctx)
}
