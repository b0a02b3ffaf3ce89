package postgres

import (
	"context"
	"fmt"

	"domainwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	tldsTable        = "tlds"
	rdapServersTable = "rdap_servers"
)

// ReplaceTLDs swaps the full set of TLD rows owned by one source. Run inside
// WithTx so readers never see the directory between delete and insert.
func (p *PgSQL) ReplaceTLDs(ctx context.Context, source string, tlds []domain.TLD) error {
	if _, err := p.Builder.Delete(tldsTable).
		Where(goqu.I("source").Eq(source)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete tlds for source %s: %w", source, err)
	}

	if len(tlds) == 0 {
		return nil
	}

	rows := make([]PgTLD, 0, len(tlds))
	for _, t := range tlds {
		rows = append(rows, PgTLD{
			Name:   t.Name,
			Type:   t.Type,
			Source: source,
		})
	}

	if _, err := p.Builder.Insert(tldsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("name", goqu.Record{
			"type":       goqu.L("EXCLUDED.type"),
			"source":     goqu.L("EXCLUDED.source"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert tlds for source %s: %w", source, err)
	}

	return nil
}

// ReplaceRdapServers swaps the full set of endpoint rows owned by one source.
func (p *PgSQL) ReplaceRdapServers(ctx context.Context, source string, servers []domain.RdapServer) error {
	if _, err := p.Builder.Delete(rdapServersTable).
		Where(goqu.I("source").Eq(source)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete rdap servers for source %s: %w", source, err)
	}

	if len(servers) == 0 {
		return nil
	}

	rows := make([]PgRdapServer, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, PgRdapServer{
			TLD:    s.TLD,
			URL:    s.URL,
			Rank:   s.Rank,
			Source: source,
		})
	}

	if _, err := p.Builder.Insert(rdapServersTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("tld, url", goqu.Record{
			"rank":       goqu.L("EXCLUDED.rank"),
			"source":     goqu.L("EXCLUDED.source"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert rdap servers for source %s: %w", source, err)
	}

	return nil
}

// RdapServers returns all endpoint rows ordered by TLD then rank.
func (p *PgSQL) RdapServers(ctx context.Context) ([]domain.RdapServer, error) {
	var rows []PgRdapServer
	if err := p.Builder.From(rdapServersTable).
		Order(goqu.I("tld").Asc(), goqu.I("rank").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch rdap servers: %w", err)
	}

	out := make([]domain.RdapServer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
