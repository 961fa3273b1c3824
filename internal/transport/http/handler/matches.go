package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swipehome/api/internal/application/match"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/transport/http/middleware"
)

// MatchHandler handles the match lifecycle.
type MatchHandler struct {
	svc match.Service
}

func NewMatchHandler(svc match.Service) *MatchHandler {
	return &MatchHandler{svc: svc}
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserA.ID != claims.UserID && req.UserB.ID != claims.UserID {
		writeError(w, http.StatusForbidden, "caller must be a match participant")
		return
	}
	m, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MatchHandler) Unmatch(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	matchID := chi.URLParam(r, "id")
	m, err := h.svc.Get(r.Context(), matchID)
	if err != nil {
		httpError(w, err)
		return
	}
	if !m.HasParticipant(claims.UserID) && claims.Kind != domain.KindAdministrator {
		writeError(w, http.StatusForbidden, "caller is not a match participant")
		return
	}
	if err := h.svc.Unmatch(r.Context(), matchID); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "unmatched"})
}
