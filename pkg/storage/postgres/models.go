package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"domainwatch/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:    domain.UserID(p.ID),
		Email: p.Email,
	}
}

type PgWatchList struct {
	Token     uuid.UUID       `db:"token"`
	UserID    uuid.UUID       `db:"user_id"`
	Name      string          `db:"name"`
	Triggers  json.RawMessage `db:"triggers"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgWatchList) ToDomain() (*domain.WatchList, error) {
	var triggers []domain.EventKind
	if err := json.Unmarshal(p.Triggers, &triggers); err != nil {
		return nil, fmt.Errorf("could not unmarshal watchlist triggers: %w", err)
	}

	return &domain.WatchList{
		Token:     domain.WatchListToken(p.Token),
		UserID:    domain.UserID(p.UserID),
		Name:      p.Name,
		Triggers:  triggers,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgWatchList) FromDomain(wl domain.WatchList) error {
	triggers, err := json.Marshal(wl.Triggers)
	if err != nil {
		return fmt.Errorf("could not marshal watchlist triggers: %w", err)
	}

	*p = PgWatchList{
		Token:     uuid.UUID(wl.Token),
		UserID:    uuid.UUID(wl.UserID),
		Name:      wl.Name,
		Triggers:  triggers,
		CreatedAt: wl.CreatedAt,
	}

	return nil
}

// PgWatchListDomain is a row of the watchlist-to-domain reference table.
type PgWatchListDomain struct {
	WatchListToken uuid.UUID `db:"watch_list_token"`
	DomainLdhName  string    `db:"domain_ldh_name"`
}

type PgDomain struct {
	LdhName     string          `db:"ldh_name"`
	Snapshot    json.RawMessage `db:"snapshot"    goqu:"skipinsert"`
	RefreshedAt sql.NullTime    `db:"refreshed_at" goqu:"skipinsert"`
	CreatedAt   time.Time       `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   sql.NullTime    `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() (*domain.Domain, error) {
	var snap domain.Snapshot
	if len(p.Snapshot) > 0 {
		if err := json.Unmarshal(p.Snapshot, &snap); err != nil {
			return nil, fmt.Errorf("could not unmarshal domain snapshot: %w", err)
		}
	}

	return &domain.Domain{
		LdhName:     p.LdhName,
		Snapshot:    snap,
		RefreshedAt: p.RefreshedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}, nil
}

func pgDomainsToDomain(rows []PgDomain) ([]domain.Domain, error) {
	out := make([]domain.Domain, 0, len(rows))
	for i := range rows {
		d, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgDomainEvent struct {
	DomainLdhName string    `db:"domain_ldh_name"`
	Kind          string    `db:"kind"`
	Date          time.Time `db:"date"`
}

func (p *PgDomainEvent) ToDomain() domain.Event {
	return domain.Event{
		DomainName: p.DomainLdhName,
		Kind:       domain.EventKind(p.Kind),
		Date:       p.Date,
	}
}

func (p *PgDomainEvent) FromDomain(ev domain.Event) {
	*p = PgDomainEvent{
		DomainLdhName: ev.DomainName,
		Kind:          string(ev.Kind),
		Date:          ev.Date,
	}
}

type PgTLD struct {
	Name      string       `db:"name"`
	Type      string       `db:"type"`
	Source    string       `db:"source"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

type PgRdapServer struct {
	TLD       string       `db:"tld"`
	URL       string       `db:"url"`
	Rank      int          `db:"rank"`
	Source    string       `db:"source"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRdapServer) ToDomain() domain.RdapServer {
	return domain.RdapServer{
		TLD:       p.TLD,
		URL:       p.URL,
		Rank:      p.Rank,
		Source:    p.Source,
		UpdatedAt: p.UpdatedAt.Time,
	}
}
