// Package notification creates, lists and marks-read notification records,
// and hosts the dispatcher that turns domain events into notifications.
package notification

import (
	"context"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/pkg/id"
)

type Service interface {
	// Notify creates an unread notification addressed to userID.
	Notify(ctx context.Context, userID string, ntype domain.NotificationType, message string, nctx domain.NotificationContext) (*domain.Notification, error)
	// Get returns the notification, or (nil, nil) when the id is unknown.
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	// MarkRead is idempotent. An unknown id yields (nil, nil) rather than an
	// error: clients may double-fire it under concurrent UI state.
	MarkRead(ctx context.Context, notificationID string) (*domain.Notification, error)
	// ListForUser returns the whole table when userID is empty, otherwise the
	// subset addressed to userID, most recent first.
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

type notificationStore interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Put(ctx context.Context, n domain.Notification) error
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) (*domain.Notification, error)
}

type service struct {
	repo notificationStore
}

func NewService(repo notificationStore) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID string, ntype domain.NotificationType, message string, nctx domain.NotificationContext) (*domain.Notification, error) {
	n := domain.Notification{
		ID:        id.New(),
		UserID:    userID,
		Type:      ntype,
		Message:   message,
		Context:   nctx,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *service) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	return s.repo.Get(ctx, notificationID)
}

func (s *service) MarkRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	return s.repo.MarkRead(ctx, notificationID)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return all, nil
	}
	filtered := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.UserID == userID {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}
