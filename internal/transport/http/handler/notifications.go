package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swipehome/api/internal/application/notification"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/transport/http/middleware"
)

// NotificationHandler handles the per-user notification inbox.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the caller's notifications. Administrators may pass user_id
// to inspect another inbox, or omit it to see the whole table.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	userID := claims.UserID
	if claims.Kind == domain.KindAdministrator {
		userID = r.URL.Query().Get("user_id")
	}
	list, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// MarkRead flips a notification to read. Marking an unknown id is a 404, and
// re-marking a read one succeeds unchanged.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")
	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	// Ownership is checked before the write so a rejected caller leaves the
	// record untouched.
	if n.UserID != claims.UserID && claims.Kind != domain.KindAdministrator {
		writeError(w, http.StatusForbidden, "not your notification")
		return
	}
	n, err = h.svc.MarkRead(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusOK, n)
}
