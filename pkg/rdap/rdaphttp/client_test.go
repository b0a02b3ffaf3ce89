package rdaphttp_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"domainwatch/pkg/rdap"
	"domainwatch/pkg/rdap/rdaphttp"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *rdaphttp.Client {
	return rdaphttp.New(&http.Client{Transport: fn})
}

const exampleResponse = `{
  "objectClassName": "domain",
  "ldhName": "EXAMPLE.TEST",
  "status": ["client delete prohibited", "Client Transfer Prohibited"],
  "events": [
    {"eventAction": "registration", "eventDate": "2020-01-01T00:00:00Z"},
    {"eventAction": "expiration", "eventDate": "2027-01-01T00:00:00Z"}
  ],
  "entities": [
    {
      "handle": "376",
      "roles": ["registrar"],
      "vcardArray": ["vcard", [["version", {}, "text", "4.0"], ["fn", {}, "text", "Example Registrar"]]]
    }
  ],
  "nameservers": [
    {"ldhName": "A.IANA-SERVERS.NET"},
    {"ldhName": "B.IANA-SERVERS.NET"}
  ]
}`

func TestClient_Lookup_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "rdap.example", r.URL.Host)
		require.Equal(t, "/domain/example.test", r.URL.Path)
		require.Equal(t, "application/rdap+json", r.Header.Get("Accept"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(exampleResponse)),
		}, nil
	})

	snap, err := c.Lookup(context.Background(), "https://rdap.example/", "example.test")
	require.NoError(t, err)
	require.Equal(t, "Example Registrar", snap.Registrar)
	require.True(t, snap.ExpiresAt.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, []string{"client delete prohibited", "client transfer prohibited"}, snap.Statuses)
	require.Equal(t, []string{"a.iana-servers.net", "b.iana-servers.net"}, snap.Nameservers)
	require.False(t, snap.Deleted)
}

func TestClient_Lookup_appendsSlash(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/rdap/domain/example.test", r.URL.Path)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(exampleResponse)),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "https://rdap.example/rdap", "example.test")
	require.NoError(t, err)
}

func TestClient_Lookup_notFoundIsProtocolError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader(`{"errorCode":404}`)),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "https://rdap.example/", "gone.test")
	require.ErrorIs(t, err, rdap.ErrProtocol)
	code, ok := rdap.StatusCode(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, code)
}

func TestClient_Lookup_serverErrorIsProtocolError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("boom")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "https://rdap.example/", "example.test")
	require.ErrorIs(t, err, rdap.ErrProtocol)
	code, ok := rdap.StatusCode(err)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, code)
}

func TestClient_Lookup_connectionFailureIsTransportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.Lookup(context.Background(), "https://rdap.example/", "example.test")
	require.ErrorIs(t, err, rdap.ErrTransport)
	require.NotErrorIs(t, err, rdap.ErrProtocol)
}

func TestClient_Lookup_malformedBodyIsParseError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html>not json</html>")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "https://rdap.example/", "example.test")
	require.ErrorIs(t, err, rdap.ErrParse)
}

func TestClient_Lookup_wrongObjectClassIsParseError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"objectClassName":"nameserver","ldhName":"ns1.example.test"}`)),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "https://rdap.example/", "example.test")
	require.ErrorIs(t, err, rdap.ErrParse)
}

func TestClient_Lookup_pendingDeleteMarksDeleted(t *testing.T) {
	body := `{
	  "objectClassName": "domain",
	  "ldhName": "GOING.TEST",
	  "status": ["pending delete"]
	}`
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	snap, err := c.Lookup(context.Background(), "https://rdap.example/", "going.test")
	require.NoError(t, err)
	require.True(t, snap.Deleted)
}

func TestClient_Lookup_registrarFallsBackToHandle(t *testing.T) {
	body := `{
	  "objectClassName": "domain",
	  "ldhName": "EXAMPLE.TEST",
	  "entities": [{"handle": "9999", "roles": ["registrar"]}]
	}`
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	snap, err := c.Lookup(context.Background(), "https://rdap.example/", "example.test")
	require.NoError(t, err)
	require.Equal(t, "9999", snap.Registrar)
}
