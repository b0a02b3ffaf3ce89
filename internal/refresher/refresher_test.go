package refresher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"domainwatch/internal/refresher"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"

	"github.com/stretchr/testify/require"
)

const tldListBody = `# Version 2026082900, Last Updated Sat Aug 29 07:07:01 2026 UTC
COM
ORG
XN--P1AI
`

const gtldListBody = `{
  "gTLDs": [
    {"gTLD": "aaa", "delegationDate": "2015-08-20", "removalDate": null},
    {"gTLD": "removed", "delegationDate": "2014-01-01", "removalDate": "2020-01-01"},
    {"gTLD": "pending", "delegationDate": null, "removalDate": null}
  ]
}`

const bootstrapBody = `{
  "description": "RDAP bootstrap file for Domain Name System registrations",
  "services": [
    [["com", "net"], ["https://rdap.verisign.com/com/v1/"]],
    [["org"], ["https://rdap.publicinterestregistry.org/rdap", "https://backup.example.org/rdap/"]]
  ]
}`

// catalogRecorder captures every replace call in order.
type catalogRecorder struct {
	tlds    map[string][]domain.TLD
	servers map[string][]domain.RdapServer
}

func newCatalogRecorder() *catalogRecorder {
	return &catalogRecorder{
		tlds:    map[string][]domain.TLD{},
		servers: map[string][]domain.RdapServer{},
	}
}

func (c *catalogRecorder) ReplaceTLDs(ctx context.Context, source string, tlds []domain.TLD) error {
	c.tlds[source] = tlds

	return nil
}

func (c *catalogRecorder) ReplaceRdapServers(ctx context.Context, source string, servers []domain.RdapServer) error {
	c.servers[source] = servers

	return nil
}

func newSourceServer(t *testing.T, tldStatus, gtldStatus, bootstrapStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/tlds-alpha-by-domain.txt", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(tldStatus)
		_, _ = w.Write([]byte(tldListBody))
	})
	mux.HandleFunc("/gtlds.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(gtldStatus)
		_, _ = w.Write([]byte(gtldListBody))
	})
	mux.HandleFunc("/dns.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(bootstrapStatus)
		_, _ = w.Write([]byte(bootstrapBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newRefresher(srv *httptest.Server, catalog refresher.Catalog) *refresher.Refresher {
	return refresher.New(srv.Client(), catalog, refresher.Options{
		TLDListURL:   srv.URL + "/tlds-alpha-by-domain.txt",
		GTLDListURL:  srv.URL + "/gtlds.json",
		BootstrapURL: srv.URL + "/dns.json",
		Timeout:      5 * time.Second,
	})
}

func TestRefresher_AllSourcesSucceed(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	srv := newSourceServer(t, http.StatusOK, http.StatusOK, http.StatusOK)
	catalog := newCatalogRecorder()

	require.NoError(t, newRefresher(srv, catalog).Refresh(context.Background()))

	require.Equal(t, []domain.TLD{
		{Name: "com"}, {Name: "org"}, {Name: "xn--p1ai"},
	}, catalog.tlds[refresher.SourceIANATLDs])

	// only delegated, non-removed gTLDs survive
	require.Equal(t, []domain.TLD{{Name: "aaa", Type: "generic"}}, catalog.tlds[refresher.SourceICANN])

	servers := catalog.servers[refresher.SourceBootstrap]
	require.Len(t, servers, 4)
	require.Equal(t, "com", servers[0].TLD)
	require.Equal(t, "https://rdap.verisign.com/com/v1/", servers[0].URL)
	require.Equal(t, 1, servers[0].Rank)
	// endpoints without a trailing slash get one
	require.Equal(t, "https://rdap.publicinterestregistry.org/rdap/", servers[2].URL)
	require.Equal(t, 2, servers[3].Rank)
}

func TestRefresher_MiddleSourceFails(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	srv := newSourceServer(t, http.StatusOK, http.StatusInternalServerError, http.StatusOK)
	catalog := newCatalogRecorder()

	err := newRefresher(srv, catalog).Refresh(context.Background())

	// the run fails with the failing step's error...
	require.ErrorIs(t, err, refresher.ErrRefresh)
	require.Contains(t, err.Error(), "unexpected status 500")

	// ...but both sibling steps still committed their data
	require.NotEmpty(t, catalog.tlds[refresher.SourceIANATLDs])
	require.Empty(t, catalog.tlds[refresher.SourceICANN])
	require.NotEmpty(t, catalog.servers[refresher.SourceBootstrap])
}

func TestRefresher_FirstErrorWins(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	srv := newSourceServer(t, http.StatusNotFound, http.StatusInternalServerError, http.StatusOK)
	catalog := newCatalogRecorder()

	err := newRefresher(srv, catalog).Refresh(context.Background())

	// two steps failed; the surfaced error is the first in declaration order
	require.ErrorIs(t, err, refresher.ErrRefresh)
	require.Contains(t, err.Error(), "2 of 3 refresh steps failed")
	require.Contains(t, err.Error(), "unexpected status 404")
	require.NotContains(t, err.Error(), "unexpected status 500")
}
