package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"domainwatch/internal/api/handler/v1handler"
	"domainwatch/pkg/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testKeys generates an RSA key pair and returns the private key plus a
// SecHandler configured with the matching public key.
func testKeys(t *testing.T) (*rsa.PrivateKey, *v1handler.SecHandler) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pubPEM)})
	require.NoError(t, err)

	return key, sec
}

func signToken(t *testing.T, key *rsa.PrivateKey, subject string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestSecHandler_ValidToken(t *testing.T) {
	key, sec := testKeys(t)
	userID := uuid.New()

	var got domain.UserID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := v1handler.UserID(r.Context())
		require.True(t, ok)
		got = id
	})

	req := httptest.NewRequest(http.MethodGet, "/watchlists", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, userID.String(), time.Hour))
	rec := httptest.NewRecorder()

	sec.Middleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
	require.Equal(t, domain.UserID(userID), got)
}

func TestSecHandler_Rejections(t *testing.T) {
	key, sec := testKeys(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for rejected requests")
	})

	cases := []struct {
		name  string
		token string
	}{
		{name: "missing header", token: ""},
		{name: "expired token", token: signToken(t, key, uuid.NewString(), -time.Hour)},
		{name: "garbage token", token: "not.a.jwt"},
		{name: "non-uuid subject", token: signToken(t, key, "root", time.Hour)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/watchlists", nil)
			if c.token != "" {
				req.Header.Set("Authorization", "Bearer "+c.token)
			}
			rec := httptest.NewRecorder()

			sec.Middleware(next).ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Result().StatusCode)
		})
	}
}

func TestSecHandler_WrongKeyRejected(t *testing.T) {
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	_, sec := testKeys(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for rejected requests")
	})

	req := httptest.NewRequest(http.MethodGet, "/watchlists", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, otherKey, uuid.NewString(), time.Hour))
	rec := httptest.NewRecorder()

	sec.Middleware(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Result().StatusCode)
}
