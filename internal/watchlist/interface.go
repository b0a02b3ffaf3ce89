package watchlist

import (
	"context"

	"domainwatch/pkg/domain"
)

//go:generate mockgen -package mockwatchlist -destination mock/mockwatchlist.go . Service

// Service manages watchlists: creation under the limited-mode policy, listing,
// the iCalendar feed and manual trigger enqueueing.
type Service interface {
	// Create stores a new watchlist for the user. Domain names are
	// canonicalized before storing; an empty trigger set subscribes to every
	// event kind. Policy violations surface with kind ErrPolicyViolation.
	Create(ctx context.Context,
		userID domain.UserID,
		name string,
		domains []string,
		triggers []domain.EventKind) (*domain.WatchList, error)

	// Lists returns all watchlists owned by the user.
	Lists(ctx context.Context, userID domain.UserID) ([]domain.WatchList, error)

	// Calendar renders the watchlist's domains and recorded events as an
	// iCalendar document.
	Calendar(ctx context.Context, token domain.WatchListToken) (string, error)

	// Trigger enqueues a watch run for the watchlist. The boolean is false
	// when a run for this watchlist is already queued or running.
	Trigger(ctx context.Context, token domain.WatchListToken) (bool, error)
}
