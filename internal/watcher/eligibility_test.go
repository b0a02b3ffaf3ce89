package watcher_test

import (
	"testing"
	"time"

	"domainwatch/internal/watcher"
	"domainwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestEligibilityPolicy(t *testing.T) {
	policy := watcher.EligibilityPolicy{
		StaleAfter:     7 * 24 * time.Hour,
		CloseWatchDays: 7,
	}
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	farExpiry := now.AddDate(1, 0, 0)

	cases := []struct {
		name string
		d    domain.Domain
		want bool
	}{
		{
			name: "never refreshed",
			d:    domain.Domain{LdhName: "example.com"},
			want: true,
		},
		{
			name: "stale snapshot",
			d: domain.Domain{
				RefreshedAt: now.Add(-8 * 24 * time.Hour),
				Snapshot:    domain.Snapshot{ExpiresAt: farExpiry},
			},
			want: true,
		},
		{
			name: "exactly at staleness boundary",
			d: domain.Domain{
				RefreshedAt: now.Add(-7 * 24 * time.Hour),
				Snapshot:    domain.Snapshot{ExpiresAt: farExpiry},
			},
			want: true,
		},
		{
			name: "fresh and far from expiry",
			d: domain.Domain{
				RefreshedAt: now.Add(-time.Hour),
				Snapshot:    domain.Snapshot{ExpiresAt: farExpiry},
			},
			want: false,
		},
		{
			name: "fresh but expiring soon",
			d: domain.Domain{
				RefreshedAt: now.Add(-time.Hour),
				Snapshot:    domain.Snapshot{ExpiresAt: now.Add(3 * 24 * time.Hour)},
			},
			want: true,
		},
		{
			name: "fresh and already expired",
			d: domain.Domain{
				RefreshedAt: now.Add(-time.Hour),
				Snapshot:    domain.Snapshot{ExpiresAt: now.Add(-24 * time.Hour)},
			},
			want: true,
		},
		{
			name: "fresh without known expiry",
			d: domain.Domain{
				RefreshedAt: now.Add(-time.Hour),
			},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, policy.Eligible(c.d, now))
		})
	}
}
