package storage

import (
	"context"

	"domainwatch/pkg/domain"
)

// WatchListStorage defines persistence operations for users and their
// watchlists. Watchlist-to-domain relationships are stored by name; the
// tracked domain rows themselves live behind DomainStorage.
type WatchListStorage interface {
	// StoreWatchList inserts a new watchlist together with its domain
	// references and returns the stored row (including generated fields).
	// Domain rows referenced by name must already exist (see
	// DomainStorage.EnsureDomains).
	StoreWatchList(ctx context.Context, wl domain.WatchList) (*domain.WatchList, error)
	// WatchListByToken fetches a watchlist by its token, including its domain
	// names and subscribed triggers. Returns nil when not found.
	WatchListByToken(ctx context.Context, token domain.WatchListToken) (*domain.WatchList, error)
	// UserWatchLists returns all watchlists owned by the given user.
	UserWatchLists(ctx context.Context, userID domain.UserID) ([]domain.WatchList, error)
	// UserTrackedDomains returns the distinct domain names referenced by any
	// of the user's watchlists. Used by the limited-mode dedup policy.
	UserTrackedDomains(ctx context.Context, userID domain.UserID) ([]string, error)
	// UserByID fetches a user. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
