// Package message appends chat messages to match threads.
package message

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
	"github.com/swipehome/api/internal/pkg/id"
	"github.com/swipehome/api/internal/pkg/validate"
)

type Service interface {
	ListByMatch(ctx context.Context, matchID string) ([]domain.Message, error)
	// Append writes an immutable message to the match's thread and publishes
	// MessageSent, which notifies the non-sending participant. The sender
	// must be one of the match's two participants.
	Append(ctx context.Context, matchID string, req domain.AppendMessageRequest) (*domain.Message, error)
}

type messageStore interface {
	ListByMatch(ctx context.Context, matchID string) ([]domain.Message, error)
	Append(ctx context.Context, m domain.Message) error
}

type matchGetter interface {
	Get(ctx context.Context, matchID string) (*domain.Match, error)
}

type publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

type service struct {
	messages messageStore
	matches  matchGetter
	bus      publisher
}

func NewService(messages messageStore, matches matchGetter, bus publisher) Service {
	return &service{messages: messages, matches: matches, bus: bus}
}

func (s *service) ListByMatch(ctx context.Context, matchID string) ([]domain.Message, error) {
	if _, err := s.matches.Get(ctx, matchID); err != nil {
		return nil, err
	}
	return s.messages.ListByMatch(ctx, matchID)
}

func (s *service) Append(ctx context.Context, matchID string, req domain.AppendMessageRequest) (*domain.Message, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	m, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasParticipant(req.SenderID) {
		return nil, fmt.Errorf("sender %s: %w", req.SenderID, domain.ErrInvalidSender)
	}
	msgType := req.Type
	if msgType == "" {
		msgType = domain.MessageTypeText
	}
	msg := domain.Message{
		ID:       id.New(),
		MatchID:  matchID,
		SenderID: req.SenderID,
		Content:  req.Content,
		Type:     msgType,
		SentAt:   time.Now().UTC(),
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.bus.Publish(ctx, event.MessageSent{Match: *m, Message: msg}); err != nil {
		slog.Warn("message notification delivery incomplete", "match_id", matchID, "err", err)
	}
	return &msg, nil
}
