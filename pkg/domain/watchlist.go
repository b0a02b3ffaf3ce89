package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchListToken uniquely identifies a watchlist. The token is the only thing
// a trigger message carries, so it doubles as the watchlist's public handle.
type WatchListToken uuid.UUID

// String returns the canonical UUID form of the token.
func (t WatchListToken) String() string { return uuid.UUID(t).String() }

// ParseWatchListToken parses a token from its UUID string form.
func ParseWatchListToken(s string) (WatchListToken, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return WatchListToken{}, err //nolint: wrapcheck
	}

	return WatchListToken(id), nil
}

// WatchList is a named, owned collection of tracked domain names plus the set
// of event kinds its owner wants to be notified about. The core never mutates
// a watchlist; it only reads it while processing a trigger.
//
// Invariants enforced at creation: at least one domain, at least one trigger.
type WatchList struct {
	// Token is the unique identifier carried by trigger messages.
	Token WatchListToken `json:"token"`
	// UserID references the owning user.
	UserID UserID `json:"userId"`
	// Name is the human-readable label chosen by the owner.
	Name string `json:"name"`

	// Domains holds the canonical LDH names of the tracked domains. Order is
	// irrelevant; duplicates are not allowed.
	Domains []string `json:"domains"`
	// Triggers holds the subscribed event kinds.
	Triggers []EventKind `json:"triggers"`

	// CreatedAt is when the watchlist was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// Subscribed reports whether the watchlist wants notifications for kind k.
func (w WatchList) Subscribed(k EventKind) bool {
	for _, t := range w.Triggers {
		if t == k {
			return true
		}
	}

	return false
}
