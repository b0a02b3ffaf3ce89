package watcher

import (
	"time"

	"domainwatch/pkg/domain"
)

// EligibilityPolicy decides which tracked domains a watch run re-queries.
type EligibilityPolicy struct {
	// StaleAfter is how old a snapshot may get before the domain becomes
	// eligible again.
	StaleAfter time.Duration
	// CloseWatchDays widens eligibility for domains whose expiration falls
	// within this many days of now, so they are re-checked on every run.
	CloseWatchDays int
}

// Eligible reports whether the domain is due for a registry re-query at now.
// A domain that has never been refreshed is always eligible.
func (p EligibilityPolicy) Eligible(d domain.Domain, now time.Time) bool {
	if d.RefreshedAt.IsZero() {
		return true
	}
	if now.Sub(d.RefreshedAt) >= p.StaleAfter {
		return true
	}

	return p.closeWatch(d, now)
}

// closeWatch is true when the last-known expiration timestamp falls within the
// configured proximity window of now. Already-expired domains stay inside the
// window until a fresh lookup moves the timestamp.
func (p EligibilityPolicy) closeWatch(d domain.Domain, now time.Time) bool {
	expiresAt := d.Snapshot.ExpiresAt
	if expiresAt.IsZero() {
		return false
	}

	window := time.Duration(p.CloseWatchDays) * 24 * time.Hour

	return expiresAt.Sub(now) <= window
}
