package localstore

import (
	"context"
	"fmt"

	"github.com/swipehome/api/internal/domain"
)

type ListingRepo struct {
	store Blob
}

func NewListingRepo(store Blob) *ListingRepo {
	return &ListingRepo{store: store}
}

func (r *ListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	return readTable(ctx, r.store, tableListings, []domain.Listing{})
}

func (r *ListingRepo) Get(ctx context.Context, id string) (*domain.Listing, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
}

// Put prepends a new listing, matching the most-recent-first convention of
// the other tables.
func (r *ListingRepo) Put(ctx context.Context, l domain.Listing) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	return writeTable(ctx, r.store, tableListings, append([]domain.Listing{l}, list...))
}

func (r *ListingRepo) Update(ctx context.Context, id string, mutate func(*domain.Listing)) (*domain.Listing, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			mutate(&list[i])
			if err := writeTable(ctx, r.store, tableListings, list); err != nil {
				return nil, err
			}
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
}
