package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swipehome/api/internal/application/identity"
	"github.com/swipehome/api/internal/domain"
	jwtinfra "github.com/swipehome/api/internal/infrastructure/jwt"
	"github.com/swipehome/api/internal/transport/http/middleware"
)

// IdentityHandler handles signup, profile lookup and profile edits.
type IdentityHandler struct {
	svc identity.Service
	jwt *jwtinfra.Provider
}

func NewIdentityHandler(svc identity.Service, jwt *jwtinfra.Provider) *IdentityHandler {
	return &IdentityHandler{svc: svc, jwt: jwt}
}

func kindParam(r *http.Request) domain.Kind {
	return domain.Kind(chi.URLParam(r, "kind"))
}

// Register is the public signup endpoint. The fresh identity is logged in
// immediately: the response carries a bearer token.
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ident, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	bearer, err := h.jwt.Sign(*ident)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusCreated, AuthEnvelope{Bearer: bearer, Identity: ident})
}

func (h *IdentityHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), kindParam(r))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *IdentityHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, err := h.svc.Get(r.Context(), kindParam(r), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ident)
}

// Update lets an identity edit its own profile; administrators may edit any.
func (h *IdentityHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	targetID := chi.URLParam(r, "id")
	if claims.UserID != targetID && claims.Kind != domain.KindAdministrator {
		writeError(w, http.StatusForbidden, "cannot update another identity")
		return
	}
	var req domain.UpdateIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ident, err := h.svc.Update(r.Context(), kindParam(r), targetID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ident)
}
