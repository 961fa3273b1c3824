package localstore

import (
	"context"
	"time"

	"github.com/swipehome/api/internal/domain"
)

// NotificationRepo stores the global notification table, most recent first.
// The table is not partitioned by user; filtering happens in the service.
type NotificationRepo struct {
	store Blob
}

func NewNotificationRepo(store Blob) *NotificationRepo {
	return &NotificationRepo{store: store}
}

func (r *NotificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	return readTable(ctx, r.store, tableNotifications, []domain.Notification{})
}

func (r *NotificationRepo) Put(ctx context.Context, n domain.Notification) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	return writeTable(ctx, r.store, tableNotifications, append([]domain.Notification{n}, list...))
}

// Get returns the notification with the given id, or (nil, nil) when absent.
func (r *NotificationRepo) Get(ctx context.Context, id string) (*domain.Notification, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// MarkRead flips the read flag exactly once and stamps ReadAt. A second call
// on the same id is a no-op returning the already-read record. An absent id
// yields (nil, nil): clients may double-fire this under concurrent UI state.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Read {
			return &list[i], nil
		}
		now := time.Now().UTC()
		list[i].Read = true
		list[i].ReadAt = &now
		if err := writeTable(ctx, r.store, tableNotifications, list); err != nil {
			return nil, err
		}
		return &list[i], nil
	}
	return nil, nil
}
