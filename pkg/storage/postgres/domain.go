package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"domainwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	domainsTable      = "domains"
	domainEventsTable = "domain_events"
)

// EnsureDomains inserts rows for names not yet tracked; existing rows keep
// their snapshot and refresh timestamp.
func (p *PgSQL) EnsureDomains(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	rows := make([]PgDomain, 0, len(names))
	for _, name := range names {
		rows = append(rows, PgDomain{LdhName: name})
	}

	if _, err := p.Builder.Insert(domainsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not ensure domains in pg: %w", err)
	}

	return nil
}

// DomainsByNames fetches domain rows for the given canonical names.
func (p *PgSQL) DomainsByNames(ctx context.Context, names ...string) ([]domain.Domain, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Where(goqu.I("ldh_name").In(names)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch domains by names: %w", err)
	}

	return pgDomainsToDomain(rows)
}

// CommitSnapshot replaces the stored snapshot and refresh timestamp in a
// single UPDATE so concurrent readers only ever see a consistent pair.
func (p *PgSQL) CommitSnapshot(ctx context.Context,
	name string,
	snap domain.Snapshot,
	refreshedAt time.Time) (*domain.Domain, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("could not marshal snapshot: %w", err)
	}

	var row PgDomain
	found, err := p.Builder.Update(domainsTable).
		Set(goqu.Record{
			"snapshot":     b,
			"refreshed_at": refreshedAt,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("ldh_name").Eq(name)).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not commit snapshot in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// StoreEvents inserts detected events, ignoring duplicates on the
// (domain, kind, date) key so reprocessing a cycle is idempotent.
func (p *PgSQL) StoreEvents(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]PgDomainEvent, len(events))
	for i := range events {
		rows[i].FromDomain(events[i])
	}

	if _, err := p.Builder.Insert(domainEventsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store domain events in pg: %w", err)
	}

	return nil
}

// EventsByDomainNames returns stored events for the given domains ordered by
// date, then name, then kind.
func (p *PgSQL) EventsByDomainNames(ctx context.Context, names ...string) ([]domain.Event, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var rows []PgDomainEvent
	if err := p.Builder.From(domainEventsTable).
		Where(goqu.I("domain_ldh_name").In(names)).
		Order(goqu.I("date").Asc(), goqu.I("domain_ldh_name").Asc(), goqu.I("kind").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch domain events: %w", err)
	}

	out := make([]domain.Event, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
