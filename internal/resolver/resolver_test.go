package resolver_test

import (
	"context"
	"testing"
	"time"

	"domainwatch/internal/directory"
	"domainwatch/internal/resolver"
	"domainwatch/pkg/domain"
	mockrdap "domainwatch/pkg/rdap/mock"
	"domainwatch/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticRouter map[string][]string

func (r staticRouter) RouteFor(tld string) ([]string, error) {
	endpoints, ok := r[tld]
	if !ok {
		return nil, serrors.With(directory.ErrNoRoute, "no registry endpoint for TLD %q", tld)
	}

	return endpoints, nil
}

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockrdap.NewMockClient(ctrl)

	want := &domain.Snapshot{Registrar: "Example Registrar"}
	client.EXPECT().
		Lookup(gomock.Any(), "https://rdap.verisign.com/com/v1/", "example.com").
		Return(want, nil)

	res := resolver.New(staticRouter{
		"com": {"https://rdap.verisign.com/com/v1/", "https://fallback.example/"},
	}, client, time.Second)

	snap, err := res.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, want, snap)
}

func TestResolver_Resolve_NoRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockrdap.NewMockClient(ctrl)

	res := resolver.New(staticRouter{}, client, time.Second)

	_, err := res.Resolve(context.Background(), "example.zz")
	require.ErrorIs(t, err, directory.ErrNoRoute)
}

func TestResolver_Resolve_BoundsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockrdap.NewMockClient(ctrl)

	client.EXPECT().
		Lookup(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, endpoint, fqdn string) (*domain.Snapshot, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "lookup context must carry a deadline")
			require.LessOrEqual(t, time.Until(deadline), time.Second)

			return &domain.Snapshot{}, nil
		})

	res := resolver.New(staticRouter{"com": {"https://rdap.example/"}}, client, time.Second)

	_, err := res.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
}
