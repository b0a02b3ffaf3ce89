package watchlist_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"domainwatch/internal/watcher"
	"domainwatch/internal/watchlist"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/serrors"
	"domainwatch/pkg/storage"
	mockstorage "domainwatch/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var limitedOptions = watchlist.Options{
	LimitsEnabled:       true,
	MaxWatchLists:       2,
	MaxWatchListDomains: 3,
}

func expectTx(strg *mockstorage.MockStorage, tx *mockstorage.MockAllStorage) {
	strg.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	expectTx(strg, tx)

	userID := domain.UserID(uuid.New())

	tx.EXPECT().UserWatchLists(gomock.Any(), userID).Return(nil, nil)
	tx.EXPECT().UserTrackedDomains(gomock.Any(), userID).Return(nil, nil)
	// "Example.COM" and a duplicate collapse into one canonical name
	tx.EXPECT().EnsureDomains(gomock.Any(), "example.com", "example.org").Return(nil)
	tx.EXPECT().
		StoreWatchList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, wl domain.WatchList) (*domain.WatchList, error) {
			require.Equal(t, userID, wl.UserID)
			require.Equal(t, []string{"example.com", "example.org"}, wl.Domains)
			// empty trigger set defaults to all kinds
			require.Equal(t, domain.EventKinds(), wl.Triggers)

			return &wl, nil
		})

	svc := watchlist.New(strg, limitedOptions)
	created, err := svc.Create(context.Background(), userID, "infra",
		[]string{"Example.COM", "example.com.", "example.org"}, nil)
	require.NoError(t, err)
	require.Equal(t, "infra", created.Name)
}

func TestService_Create_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	svc := watchlist.New(strg, limitedOptions)
	userID := domain.UserID(uuid.New())

	_, err := svc.Create(context.Background(), userID, "", []string{"example.com"}, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), userID, "infra", nil, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), userID, "infra", []string{"not a domain"}, nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), userID, "infra",
		[]string{"example.com"}, []domain.EventKind{"bogus"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Create_PolicyViolations(t *testing.T) {
	userID := domain.UserID(uuid.New())

	t.Run("too many domains", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockStorage(ctrl)
		tx := mockstorage.NewMockAllStorage(ctrl)
		expectTx(strg, tx)

		svc := watchlist.New(strg, limitedOptions)
		_, err := svc.Create(context.Background(), userID, "infra",
			[]string{"a.com", "b.com", "c.com", "d.com"}, nil)
		require.ErrorIs(t, err, watchlist.ErrPolicyViolation)
	})

	t.Run("too many watchlists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockStorage(ctrl)
		tx := mockstorage.NewMockAllStorage(ctrl)
		expectTx(strg, tx)

		tx.EXPECT().UserWatchLists(gomock.Any(), userID).
			Return(make([]domain.WatchList, 2), nil)

		svc := watchlist.New(strg, limitedOptions)
		_, err := svc.Create(context.Background(), userID, "infra", []string{"a.com"}, nil)
		require.ErrorIs(t, err, watchlist.ErrPolicyViolation)
	})

	t.Run("domain already tracked by the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockStorage(ctrl)
		tx := mockstorage.NewMockAllStorage(ctrl)
		expectTx(strg, tx)

		tx.EXPECT().UserWatchLists(gomock.Any(), userID).Return(nil, nil)
		tx.EXPECT().UserTrackedDomains(gomock.Any(), userID).
			Return([]string{"a.com"}, nil)

		svc := watchlist.New(strg, limitedOptions)
		_, err := svc.Create(context.Background(), userID, "infra", []string{"A.com"}, nil)
		require.ErrorIs(t, err, watchlist.ErrPolicyViolation)
	})

	t.Run("limits disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockStorage(ctrl)
		tx := mockstorage.NewMockAllStorage(ctrl)
		expectTx(strg, tx)

		names := []string{"a.com", "b.com", "c.com", "d.com"}
		args := make([]any, 0, len(names)+1)
		args = append(args, gomock.Any())
		for _, n := range names {
			args = append(args, n)
		}
		tx.EXPECT().EnsureDomains(args[0], args[1:]...).Return(nil)
		tx.EXPECT().StoreWatchList(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, wl domain.WatchList) (*domain.WatchList, error) {
				return &wl, nil
			})

		svc := watchlist.New(strg, watchlist.Options{LimitsEnabled: false})
		_, err := svc.Create(context.Background(), userID, "infra", names, nil)
		require.NoError(t, err)
	})
}

func TestService_Trigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)

	token := domain.WatchListToken(uuid.New())
	wl := domain.WatchList{Token: token, Domains: []string{"example.com"}}

	strg.EXPECT().WatchListByToken(gomock.Any(), token).Return(&wl, nil)
	strg.EXPECT().
		AddJob(gomock.Any(), watcher.ProcessWatchListArgs{WatchListToken: token.String()}, gomock.Nil()).
		Return(true, nil)

	svc := watchlist.New(strg, limitedOptions)
	added, err := svc.Trigger(context.Background(), token)
	require.NoError(t, err)
	require.True(t, added)
}

func TestService_Trigger_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)

	token := domain.WatchListToken(uuid.New())
	strg.EXPECT().WatchListByToken(gomock.Any(), token).Return(nil, nil)

	svc := watchlist.New(strg, limitedOptions)
	_, err := svc.Trigger(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Calendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)

	token := domain.WatchListToken(uuid.New())
	wl := domain.WatchList{Token: token, Name: "infra", Domains: []string{"example.com"}}
	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	strg.EXPECT().WatchListByToken(gomock.Any(), token).Return(&wl, nil)
	strg.EXPECT().DomainsByNames(gomock.Any(), "example.com").Return([]domain.Domain{
		{LdhName: "example.com", Snapshot: domain.Snapshot{ExpiresAt: expiry}},
	}, nil)
	strg.EXPECT().EventsByDomainNames(gomock.Any(), "example.com").Return([]domain.Event{
		{DomainName: "example.com", Kind: domain.EventTransfer, Date: expiry.AddDate(0, -1, 0)},
	}, nil)

	svc := watchlist.New(strg, limitedOptions)
	feed, err := svc.Calendar(context.Background(), token)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	require.Contains(t, feed, "SUMMARY:example.com expires")
	require.Contains(t, feed, "SUMMARY:example.com: transfer")
	require.Contains(t, feed, "METHOD:PUBLISH")
}
