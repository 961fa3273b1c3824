package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swipehome/api/internal/application/message"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/transport/http/middleware"
)

// MessageHandler handles per-match chat threads.
type MessageHandler struct {
	svc message.Service
}

func NewMessageHandler(svc message.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.ListByMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

type appendMessageBody struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

// Append writes a message to the thread. The sender is always the
// authenticated identity, never a caller-supplied id.
func (h *MessageHandler) Append(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body appendMessageBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	msg, err := h.svc.Append(r.Context(), chi.URLParam(r, "id"), domain.AppendMessageRequest{
		SenderID: claims.UserID,
		Content:  body.Content,
		Type:     body.Type,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
