package v1handler

import (
	"encoding/json"
	"net/http"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// watchListRequest is the payload for creating a watchlist.
type watchListRequest struct {
	Name     string   `json:"name"`
	Domains  []string `json:"domains"`
	Triggers []string `json:"triggers,omitempty"`
}

// watchListResponse is the API shape of a watchlist.
type watchListResponse struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Domains   []string  `json:"domains"`
	Triggers  []string  `json:"triggers"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func toWatchListResponse(wl domain.WatchList) watchListResponse {
	triggers := make([]string, 0, len(wl.Triggers))
	for _, kind := range wl.Triggers {
		triggers = append(triggers, string(kind))
	}

	return watchListResponse{
		Token:     wl.Token.String(),
		Name:      wl.Name,
		Domains:   wl.Domains,
		Triggers:  triggers,
		CreatedAt: wl.CreatedAt,
	}
}

func (h *Handler) createWatchList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserID(ctx)
	if !ok {
		writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "not authenticated"))

		return
	}

	var req watchListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body"))

		return
	}

	triggers := make([]domain.EventKind, 0, len(req.Triggers))
	for _, t := range req.Triggers {
		triggers = append(triggers, domain.EventKind(t))
	}

	created, err := h.deps.WatchLists.Create(ctx, userID, req.Name, req.Domains, triggers)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, toWatchListResponse(*created))
}

func (h *Handler) listWatchLists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserID(ctx)
	if !ok {
		writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "not authenticated"))

		return
	}

	lists, err := h.deps.WatchLists.Lists(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := make([]watchListResponse, 0, len(lists))
	for _, wl := range lists {
		out = append(out, toWatchListResponse(wl))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) triggerWatchList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := domain.ParseWatchListToken(chi.URLParam(r, "token"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "malformed watchlist token"))

		return
	}

	added, err := h.deps.WatchLists.Trigger(ctx, token)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, map[string]bool{"enqueued": added})
}

func (h *Handler) watchListCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := domain.ParseWatchListToken(chi.URLParam(r, "token"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "malformed watchlist token"))

		return
	}

	feed, err := h.deps.WatchLists.Calendar(ctx, token)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}
