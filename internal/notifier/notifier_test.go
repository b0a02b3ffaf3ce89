package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"domainwatch/internal/notifier"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type senderFunc func(ctx context.Context, n notifier.Notification) error

func (f senderFunc) Send(ctx context.Context, n notifier.Notification) error { return f(ctx, n) }

func testWatchList(kinds ...domain.EventKind) domain.WatchList {
	return domain.WatchList{
		Token:    domain.WatchListToken(uuid.New()),
		Name:     "infra",
		Domains:  []string{"example.com"},
		Triggers: kinds,
	}
}

func TestDispatcher_FiltersBySubscription(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	var sent []notifier.Notification
	d := notifier.New(senderFunc(func(ctx context.Context, n notifier.Notification) error {
		sent = append(sent, n)

		return nil
	}), time.Second)

	owner := domain.User{Email: "owner@example.com"}
	wl := testWatchList(domain.EventExpiration)

	d.Dispatch(context.Background(), wl, owner, []domain.Event{
		{DomainName: "example.com", Kind: domain.EventTransfer, Date: time.Now()},
		{DomainName: "example.com", Kind: domain.EventExpiration, Date: time.Now()},
	})

	require.Len(t, sent, 1)
	require.Equal(t, "owner@example.com", sent[0].Recipient)
	require.Equal(t, notifier.TemplateDomainEvent, sent[0].Template)
	require.Equal(t, string(domain.EventExpiration), sent[0].Context["kind"])
}

func TestDispatcher_SendFailureIsIsolated(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	calls := 0
	d := notifier.New(senderFunc(func(ctx context.Context, n notifier.Notification) error {
		calls++
		if calls == 1 {
			return errors.New("smtp down")
		}

		return nil
	}), time.Second)

	owner := domain.User{Email: "owner@example.com"}
	wl := testWatchList(domain.EventTransfer, domain.EventExpiration)

	// the first send fails, the second must still be attempted
	d.Dispatch(context.Background(), wl, owner, []domain.Event{
		{DomainName: "example.com", Kind: domain.EventTransfer, Date: time.Now()},
		{DomainName: "example.com", Kind: domain.EventExpiration, Date: time.Now()},
	})

	require.Equal(t, 2, calls)
}

func TestDispatcher_SendsAreTimeBounded(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	d := notifier.New(senderFunc(func(ctx context.Context, n notifier.Notification) error {
		_, ok := ctx.Deadline()
		require.True(t, ok, "send context must carry a deadline")

		return nil
	}), time.Second)

	owner := domain.User{Email: "owner@example.com"}
	wl := testWatchList(domain.EventDeletion)

	d.DispatchFailure(context.Background(), wl, owner, "example.com", errors.New("503"))
}
