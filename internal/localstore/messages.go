package localstore

import (
	"context"

	"github.com/swipehome/api/internal/domain"
)

// MessageRepo stores threads as one blob holding a map of match id to its
// ordered message list. Threads are append-only.
type MessageRepo struct {
	store Blob
}

func NewMessageRepo(store Blob) *MessageRepo {
	return &MessageRepo{store: store}
}

func (r *MessageRepo) ListByMatch(ctx context.Context, matchID string) ([]domain.Message, error) {
	threads, err := readTable(ctx, r.store, tableMessages, map[string][]domain.Message{})
	if err != nil {
		return nil, err
	}
	return threads[matchID], nil
}

func (r *MessageRepo) Append(ctx context.Context, m domain.Message) error {
	threads, err := readTable(ctx, r.store, tableMessages, map[string][]domain.Message{})
	if err != nil {
		return err
	}
	threads[m.MatchID] = append(threads[m.MatchID], m)
	return writeTable(ctx, r.store, tableMessages, threads)
}
