package watcher_test

import (
	"testing"
	"time"

	"domainwatch/internal/watcher"
	"domainwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func baseSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Registrar:   "Example Registrar",
		ExpiresAt:   time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		Statuses:    []string{"active"},
		Nameservers: []string{"ns1.example.com", "ns2.example.com"},
		Entities:    []domain.Entity{{Handle: "R-1", Name: "Example Registrar", Roles: []string{"registrar"}}},
	}
}

func kinds(events []domain.Event) []domain.EventKind {
	out := make([]domain.EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}

	return out
}

func TestDiff_Identical(t *testing.T) {
	snap := baseSnapshot()
	require.Empty(t, watcher.Diff("example.com", snap, snap, time.Now()))
}

func TestDiff_Transfer(t *testing.T) {
	prev := baseSnapshot()
	cur := baseSnapshot()
	cur.Registrar = "Other Registrar"

	events := watcher.Diff("example.com", prev, cur, time.Now())
	require.Equal(t, []domain.EventKind{domain.EventTransfer}, kinds(events))
}

func TestDiff_Expiration(t *testing.T) {
	prev := baseSnapshot()
	cur := baseSnapshot()
	cur.ExpiresAt = cur.ExpiresAt.AddDate(1, 0, 0)

	events := watcher.Diff("example.com", prev, cur, time.Now())
	require.Equal(t, []domain.EventKind{domain.EventExpiration}, kinds(events))
}

func TestDiff_Deletion(t *testing.T) {
	prev := baseSnapshot()
	cur := baseSnapshot()
	cur.Deleted = true
	cur.Statuses = []string{"pending delete"}

	events := watcher.Diff("example.com", prev, cur, time.Now())
	require.Equal(t, []domain.EventKind{domain.EventLastChanged, domain.EventDeletion}, kinds(events))
}

func TestDiff_DeletionNotRepeated(t *testing.T) {
	// once a domain is already unresolvable, staying unresolvable is no event
	prev := baseSnapshot()
	prev.Deleted = true
	cur := prev

	require.Empty(t, watcher.Diff("example.com", prev, cur, time.Now()))
}

func TestDiff_LastChangedOnGeneralFieldOnly(t *testing.T) {
	prev := baseSnapshot()
	cur := baseSnapshot()
	cur.Nameservers = []string{"ns1.example.com", "ns3.example.com"}

	events := watcher.Diff("example.com", prev, cur, time.Now())
	require.Equal(t, []domain.EventKind{domain.EventLastChanged}, kinds(events))
}

func TestDiff_AtMostOneEventPerKindAndDeterministicOrder(t *testing.T) {
	prev := baseSnapshot()
	cur := domain.Snapshot{
		Registrar:   "Other Registrar",
		ExpiresAt:   prev.ExpiresAt.AddDate(0, 6, 0),
		Statuses:    []string{"pending delete", "redemption period"},
		Nameservers: nil,
		Deleted:     true,
	}

	now := time.Now()
	events := watcher.Diff("example.com", prev, cur, now)

	require.Equal(t, []domain.EventKind{
		domain.EventLastChanged,
		domain.EventTransfer,
		domain.EventExpiration,
		domain.EventDeletion,
	}, kinds(events))

	for _, e := range events {
		require.Equal(t, "example.com", e.DomainName)
		require.Equal(t, now, e.Date)
	}
}
