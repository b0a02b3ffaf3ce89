package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"domainwatch/internal/config"
	"domainwatch/pkg/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SecHandlerOptions configure bearer-token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests carrying an RS256-signed bearer token
// whose subject is the caller's user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

type userIDCtxKey struct{}

// UserID extracts the authenticated user ID stored by the middleware.
func UserID(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(userIDCtxKey{}).(domain.UserID)

	return id, ok
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject as the authenticated user ID in the request context.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeUnauthorized(w, "missing bearer token")

			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
			}

			return s.publicKey, nil
		})
		if err != nil {
			writeUnauthorized(w, "invalid bearer token")

			return
		}

		subject, err := uuid.Parse(claims.Subject)
		if err != nil {
			writeUnauthorized(w, "invalid token subject")

			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, domain.UserID(subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
