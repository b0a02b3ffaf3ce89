package watcher

import (
	"time"

	"domainwatch/pkg/domain"
)

// Diff compares two snapshots of the same domain and returns at most one
// event per kind, in the declaration order of domain.EventKinds. Comparing a
// snapshot against itself yields no events.
//
// Diff is pure: no I/O, no clock reads. now is only stamped onto the emitted
// events.
func Diff(name string, prev, cur domain.Snapshot, now time.Time) []domain.Event {
	var events []domain.Event

	emit := func(kind domain.EventKind) {
		events = append(events, domain.Event{DomainName: name, Kind: kind, Date: now})
	}

	// declaration order: last-changed, transfer, expiration, deletion
	if generalChange(prev, cur) {
		emit(domain.EventLastChanged)
	}
	if prev.Registrar != cur.Registrar {
		emit(domain.EventTransfer)
	}
	if !prev.ExpiresAt.Equal(cur.ExpiresAt) {
		emit(domain.EventExpiration)
	}
	if !prev.Deleted && cur.Deleted {
		emit(domain.EventDeletion)
	}

	return events
}

// generalChange reports whether a monitored field changed that no more
// specific event kind covers: statuses, nameservers or contact entities.
func generalChange(prev, cur domain.Snapshot) bool {
	if !equalStrings(prev.Statuses, cur.Statuses) {
		return true
	}
	if !equalStrings(prev.Nameservers, cur.Nameservers) {
		return true
	}

	return !equalEntities(prev.Entities, cur.Entities)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalEntities(a, b []domain.Entity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Handle != b[i].Handle || a[i].Name != b[i].Name {
			return false
		}
		if !equalStrings(a[i].Roles, b[i].Roles) {
			return false
		}
	}

	return true
}
