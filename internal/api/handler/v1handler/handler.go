// Package v1handler contains the HTTP handlers for version 1 of the API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"domainwatch/internal/watchlist"
	"domainwatch/pkg/logger"
	"domainwatch/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps carries the services the handlers delegate to.
type Deps struct {
	// WatchLists manages watchlist creation, listing, calendars and triggers.
	WatchLists watchlist.Service
}

// Handler implements the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes builds the v1 router. All routes except the calendar feed require a
// bearer token; the calendar is addressed by the unguessable watchlist token
// itself so calendar clients can subscribe without auth headers.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware)
		r.Post("/watchlists", h.createWatchList)
		r.Get("/watchlists", h.listWatchLists)
		r.Post("/watchlists/{token}/trigger", h.triggerWatchList)
	})

	r.Get("/watchlists/{token}/calendar", h.watchListCalendar)

	return r
}

// errorResponse is the uniform error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// writeError maps semantic error kinds to HTTP statuses. Unclassified errors
// become opaque 500s so internals never leak to clients.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, serrors.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, watchlist.ErrPolicyViolation), errors.Is(err, serrors.ErrForbidden):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, serrors.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, serrors.ErrConflict):
		status, msg = http.StatusConflict, err.Error()
	default:
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	writeJSON(ctx, w, status, errorResponse{Error: msg})
}
