package directory_test

import (
	"context"
	"testing"

	"domainwatch/internal/directory"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/storage"
	mockstorage "domainwatch/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDirectory_RouteFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)

	strg.EXPECT().RdapServers(gomock.Any()).Return([]domain.RdapServer{
		{TLD: "com", URL: "https://rdap.verisign.com/com/v1/", Rank: 1},
		{TLD: "com", URL: "https://rdap.example.org/", Rank: 2},
		{TLD: "ORG", URL: "https://rdap.publicinterestregistry.org/rdap/", Rank: 1},
	}, nil)

	dir := directory.New(strg)
	require.NoError(t, dir.Load(context.Background()))

	endpoints, err := dir.RouteFor("com")
	require.NoError(t, err)
	require.Equal(t, []string{"https://rdap.verisign.com/com/v1/", "https://rdap.example.org/"}, endpoints)

	// TLD matching is case-insensitive on both sides
	endpoints, err = dir.RouteFor("Org")
	require.NoError(t, err)
	require.Equal(t, []string{"https://rdap.publicinterestregistry.org/rdap/"}, endpoints)
}

func TestDirectory_RouteFor_UnknownTLD(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)

	dir := directory.New(strg)

	_, err := dir.RouteFor("nope")
	require.ErrorIs(t, err, directory.ErrNoRoute)
}

func TestDirectory_ReplaceRdapServers_SwapsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	servers := []domain.RdapServer{{TLD: "io", URL: "https://rdap.identitydigital.services/rdap/", Rank: 1}}

	strg.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
	tx.EXPECT().ReplaceRdapServers(gomock.Any(), "bootstrap", servers).Return(nil)
	strg.EXPECT().RdapServers(gomock.Any()).Return(servers, nil)

	dir := directory.New(strg)
	require.NoError(t, dir.ReplaceRdapServers(context.Background(), "bootstrap", servers))

	endpoints, err := dir.RouteFor("io")
	require.NoError(t, err)
	require.Equal(t, []string{"https://rdap.identitydigital.services/rdap/"}, endpoints)
}

func TestDirectory_ReplaceTLDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	tlds := []domain.TLD{{Name: "com", Type: "generic"}}

	strg.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
	tx.EXPECT().ReplaceTLDs(gomock.Any(), "iana", tlds).Return(nil)

	dir := directory.New(strg)
	require.NoError(t, dir.ReplaceTLDs(context.Background(), "iana", tlds))
}
