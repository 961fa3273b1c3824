package localstore

import (
	"context"
	"fmt"

	"github.com/swipehome/api/internal/domain"
)

type MatchRepo struct {
	store Blob
}

func NewMatchRepo(store Blob) *MatchRepo {
	return &MatchRepo{store: store}
}

// List returns every match, ended ones included. Callers project the active
// set themselves.
func (r *MatchRepo) List(ctx context.Context) ([]domain.Match, error) {
	return readTable(ctx, r.store, tableMatches, []domain.Match{})
}

func (r *MatchRepo) Get(ctx context.Context, id string) (*domain.Match, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
}

func (r *MatchRepo) Put(ctx context.Context, m domain.Match) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	return writeTable(ctx, r.store, tableMatches, append([]domain.Match{m}, list...))
}

func (r *MatchRepo) Update(ctx context.Context, id string, mutate func(*domain.Match)) (*domain.Match, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			mutate(&list[i])
			if err := writeTable(ctx, r.store, tableMatches, list); err != nil {
				return nil, err
			}
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
}
