package postgres

import (
	"context"
	"fmt"

	"domainwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable            = "users"
	watchListsTable       = "watch_lists"
	watchListDomainsTable = "watch_list_domains"
)

// StoreWatchList inserts the watchlist row plus one reference row per tracked
// domain. Callers are expected to run this inside WithTx together with
// EnsureDomains so a failed insert leaves no partial watchlist behind.
func (p *PgSQL) StoreWatchList(ctx context.Context, wl domain.WatchList) (*domain.WatchList, error) {
	var row PgWatchList
	if err := row.FromDomain(wl); err != nil {
		return nil, err
	}

	var stored PgWatchList
	found, err := p.Builder.Insert(watchListsTable).
		Rows(row).
		Returning(&PgWatchList{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store watchlist into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no row returned storing watchlist")
	}

	refs := make([]PgWatchListDomain, 0, len(wl.Domains))
	for _, name := range wl.Domains {
		refs = append(refs, PgWatchListDomain{
			WatchListToken: uuid.UUID(wl.Token),
			DomainLdhName:  name,
		})
	}
	if _, err := p.Builder.Insert(watchListDomainsTable).
		Rows(refs).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store watchlist domains into pg: %w", err)
	}

	out, err := stored.ToDomain()
	if err != nil {
		return nil, err
	}
	out.Domains = append([]string(nil), wl.Domains...)

	return out, nil
}

// WatchListByToken fetches one watchlist and its domain references.
func (p *PgSQL) WatchListByToken(ctx context.Context, token domain.WatchListToken) (*domain.WatchList, error) {
	var row PgWatchList
	found, err := p.Builder.From(watchListsTable).
		Where(goqu.I("token").Eq(uuid.UUID(token))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch watchlist by token: %w", err)
	}
	if !found {
		return nil, nil
	}

	wl, err := row.ToDomain()
	if err != nil {
		return nil, err
	}

	var names []string
	if err := p.Builder.From(watchListDomainsTable).
		Select(goqu.I("domain_ldh_name")).
		Where(goqu.I("watch_list_token").Eq(uuid.UUID(token))).
		Order(goqu.I("domain_ldh_name").Asc()).
		Executor().ScanValsContext(ctx, &names); err != nil {
		return nil, fmt.Errorf("could not fetch watchlist domains: %w", err)
	}
	wl.Domains = names

	return wl, nil
}

// UserWatchLists returns all watchlists owned by the user, each with its
// domain references resolved.
func (p *PgSQL) UserWatchLists(ctx context.Context, userID domain.UserID) ([]domain.WatchList, error) {
	var rows []PgWatchList
	if err := p.Builder.From(watchListsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user watchlists: %w", err)
	}

	var refs []PgWatchListDomain
	if err := p.Builder.From(watchListDomainsTable).
		Join(goqu.T(watchListsTable),
			goqu.On(goqu.I(watchListDomainsTable+".watch_list_token").Eq(goqu.I(watchListsTable+".token")))).
		Where(goqu.I(watchListsTable+".user_id").Eq(uuid.UUID(userID))).
		Select(goqu.I(watchListDomainsTable+".watch_list_token"), goqu.I(watchListDomainsTable+".domain_ldh_name")).
		Executor().ScanStructsContext(ctx, &refs); err != nil {
		return nil, fmt.Errorf("could not fetch user watchlist domains: %w", err)
	}

	byToken := make(map[uuid.UUID][]string, len(rows))
	for _, ref := range refs {
		byToken[ref.WatchListToken] = append(byToken[ref.WatchListToken], ref.DomainLdhName)
	}

	out := make([]domain.WatchList, 0, len(rows))
	for i := range rows {
		wl, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		wl.Domains = byToken[rows[i].Token]

		out = append(out, *wl)
	}

	return out, nil
}

// UserTrackedDomains returns the distinct domain names referenced anywhere in
// the user's watchlists.
func (p *PgSQL) UserTrackedDomains(ctx context.Context, userID domain.UserID) ([]string, error) {
	var names []string
	if err := p.Builder.From(watchListDomainsTable).
		Join(goqu.T(watchListsTable),
			goqu.On(goqu.I(watchListDomainsTable+".watch_list_token").Eq(goqu.I(watchListsTable+".token")))).
		Where(goqu.I(watchListsTable+".user_id").Eq(uuid.UUID(userID))).
		SelectDistinct(goqu.I(watchListDomainsTable+".domain_ldh_name")).
		Executor().ScanValsContext(ctx, &names); err != nil {
		return nil, fmt.Errorf("could not fetch user tracked domains: %w", err)
	}

	return names, nil
}

// UserByID fetches a user row, returning nil when absent.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
