package domain

import "time"

// MessageTypeText is the default message type when the caller omits one.
const MessageTypeText = "text"

// Message belongs to exactly one match's thread. Threads are append-only:
// no edits, no deletes, ordered by SentAt.
type Message struct {
	ID       string    `json:"id"`
	MatchID  string    `json:"match_id"`
	SenderID string    `json:"sender_id"`
	Content  string    `json:"content"`
	Type     string    `json:"type"`
	SentAt   time.Time `json:"sent_at"`
}

type AppendMessageRequest struct {
	SenderID string `json:"sender_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type"`
}
