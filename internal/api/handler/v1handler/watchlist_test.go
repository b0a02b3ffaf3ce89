package v1handler_test

import (
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"domainwatch/internal/api/handler/v1handler"
	"domainwatch/internal/watchlist"
	mockwatchlist "domainwatch/internal/watchlist/mock"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"
	"domainwatch/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	router chi.Router
	svc    *mockwatchlist.MockService
	key    *rsa.PrivateKey
	userID domain.UserID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockwatchlist.NewMockService(ctrl)
	key, sec := testKeys(t)

	return &fixture{
		router: v1handler.New(v1handler.Deps{WatchLists: svc}).Routes(sec),
		svc:    svc,
		key:    key,
		userID: domain.UserID(uuid.New()),
	}
}

func (f *fixture) do(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if authed {
		req.Header.Set("Authorization",
			"Bearer "+signToken(t, f.key, uuid.UUID(f.userID).String(), time.Hour))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestCreateWatchList(t *testing.T) {
	f := newFixture(t)
	token := domain.WatchListToken(uuid.New())

	f.svc.EXPECT().
		Create(gomock.Any(), f.userID, "infra", []string{"example.com"}, []domain.EventKind{"expiration"}).
		Return(&domain.WatchList{
			Token:    token,
			UserID:   f.userID,
			Name:     "infra",
			Domains:  []string{"example.com"},
			Triggers: []domain.EventKind{domain.EventExpiration},
		}, nil)

	rec := f.do(t, http.MethodPost, "/watchlists",
		`{"name":"infra","domains":["example.com"],"triggers":["expiration"]}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token    string   `json:"token"`
		Triggers []string `json:"triggers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, token.String(), resp.Token)
	require.Equal(t, []string{"expiration"}, resp.Triggers)
}

func TestCreateWatchList_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/watchlists", `{"name":"infra","domains":["example.com"]}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateWatchList_PolicyViolationMapsToForbidden(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().
		Create(gomock.Any(), f.userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(watchlist.ErrPolicyViolation, "watchlist limit reached"))

	rec := f.do(t, http.MethodPost, "/watchlists", `{"name":"infra","domains":["example.com"]}`, true)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "watchlist limit reached")
}

func TestCreateWatchList_MalformedBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/watchlists", `{"name":`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListWatchLists(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().Lists(gomock.Any(), f.userID).Return([]domain.WatchList{
		{Token: domain.WatchListToken(uuid.New()), Name: "a", Domains: []string{"a.com"}},
		{Token: domain.WatchListToken(uuid.New()), Name: "b", Domains: []string{"b.com"}},
	}, nil)

	rec := f.do(t, http.MethodGet, "/watchlists", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
}

func TestTriggerWatchList(t *testing.T) {
	f := newFixture(t)
	token := domain.WatchListToken(uuid.New())

	f.svc.EXPECT().Trigger(gomock.Any(), token).Return(true, nil)

	rec := f.do(t, http.MethodPost, "/watchlists/"+token.String()+"/trigger", "", true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"enqueued":true`)
}

func TestTriggerWatchList_MalformedToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/watchlists/garbage/trigger", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchListCalendar_NoAuthRequired(t *testing.T) {
	f := newFixture(t)
	token := domain.WatchListToken(uuid.New())

	f.svc.EXPECT().Calendar(gomock.Any(), token).
		Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil)

	rec := f.do(t, http.MethodGet, "/watchlists/"+token.String()+"/calendar", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
	require.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestWatchListCalendar_NotFound(t *testing.T) {
	f := newFixture(t)
	token := domain.WatchListToken(uuid.New())

	f.svc.EXPECT().Calendar(gomock.Any(), token).
		Return("", serrors.With(serrors.ErrNotFound, "watchlist not found"))

	rec := f.do(t, http.MethodGet, "/watchlists/"+token.String()+"/calendar", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
