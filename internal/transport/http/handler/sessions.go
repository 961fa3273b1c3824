package handler

import (
	"encoding/json"
	"net/http"

	"github.com/swipehome/api/internal/application/identity"
	"github.com/swipehome/api/internal/domain"
	jwtinfra "github.com/swipehome/api/internal/infrastructure/jwt"
)

// SessionHandler handles login. There is no server-side session record: the
// bearer token is the whole session.
type SessionHandler struct {
	identities identity.Service
	jwt        *jwtinfra.Provider
}

func NewSessionHandler(identities identity.Service, jwt *jwtinfra.Provider) *SessionHandler {
	return &SessionHandler{identities: identities, jwt: jwt}
}

type loginRequest struct {
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	AllowedKinds []domain.Kind `json:"allowed_types,omitempty"`
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ident, err := h.identities.Authenticate(r.Context(), req.Email, req.Password, req.AllowedKinds)
	if err != nil {
		httpError(w, err)
		return
	}
	bearer, err := h.jwt.Sign(*ident)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Bearer: bearer, Identity: ident})
}
