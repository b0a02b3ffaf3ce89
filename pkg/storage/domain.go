package storage

import (
	"context"
	"time"

	"domainwatch/pkg/domain"
)

// DomainStorage defines persistence for tracked domains, their registration
// snapshots and the events detected for them.
type DomainStorage interface {
	// EnsureDomains creates rows for any of the given names that are not yet
	// tracked. Existing rows are left untouched, so a domain shared between
	// watchlists keeps its snapshot and refresh timestamp.
	EnsureDomains(ctx context.Context, names ...string) error
	// DomainsByNames fetches domains by canonical name, in no particular
	// order. Names without a row are simply absent from the result.
	DomainsByNames(ctx context.Context, names ...string) ([]domain.Domain, error)
	// CommitSnapshot atomically replaces a domain's snapshot and refresh
	// timestamp. Readers never observe a half-updated pair. Returns the
	// updated row, or nil when the domain is not tracked.
	CommitSnapshot(ctx context.Context,
		name string,
		snap domain.Snapshot,
		refreshedAt time.Time) (*domain.Domain, error)
	// StoreEvents persists detected events. Duplicate (domain, kind, date)
	// triples are ignored so reprocessing stays idempotent.
	StoreEvents(ctx context.Context, events ...domain.Event) error
	// EventsByDomainNames returns stored events for the given domains,
	// ordered by date ascending. Used by the calendar feed.
	EventsByDomainNames(ctx context.Context, names ...string) ([]domain.Event, error)
}
