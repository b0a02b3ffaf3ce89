package domain

import "time"

// EventKind classifies a detected change in a domain's registration record.
// The values double as the trigger kinds a watchlist can subscribe to.
type EventKind string

const (
	// EventLastChanged indicates some monitored field changed without a more
	// specific kind applying (status set, nameservers, contact entities).
	EventLastChanged EventKind = "last-changed"
	// EventTransfer indicates the sponsoring registrar changed.
	EventTransfer EventKind = "transfer"
	// EventExpiration indicates the expiration timestamp moved.
	EventExpiration EventKind = "expiration"
	// EventDeletion indicates the domain went from resolvable to unresolvable.
	EventDeletion EventKind = "deletion"
)

// EventKinds returns all kinds in declaration order. The change detector
// emits events in this order so its output is deterministic.
func EventKinds() []EventKind {
	return []EventKind{EventLastChanged, EventTransfer, EventExpiration, EventDeletion}
}

// ValidEventKind reports whether k is one of the known kinds.
func ValidEventKind(k EventKind) bool {
	switch k {
	case EventLastChanged, EventTransfer, EventExpiration, EventDeletion:
		return true
	}

	return false
}

// Event records a single detected change for a domain. Events are immutable
// once created; they are produced by the change detector and consumed by the
// notification dispatcher and the calendar feed.
type Event struct {
	// DomainName is the canonical LDH name of the affected domain.
	DomainName string `json:"domainName"`
	// Kind classifies the change.
	Kind EventKind `json:"kind"`
	// Date is when the change was detected.
	Date time.Time `json:"date"`
}
