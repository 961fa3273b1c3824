// Package favorite tracks per-user favorite listings.
package favorite

import (
	"context"

	"github.com/swipehome/api/internal/domain"
)

type Service interface {
	List(ctx context.Context, userID string) ([]string, error)
	// Add favorites a listing for the user; repeated adds are no-ops.
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
}

type favoriteStore interface {
	ListForUser(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
}

type listingGetter interface {
	Get(ctx context.Context, listingID string) (*domain.Listing, error)
}

type service struct {
	favorites favoriteStore
	listings  listingGetter
}

func NewService(favorites favoriteStore, listings listingGetter) Service {
	return &service{favorites: favorites, listings: listings}
}

func (s *service) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.favorites.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *service) Add(ctx context.Context, userID, listingID string) error {
	if _, err := s.listings.Get(ctx, listingID); err != nil {
		return err
	}
	return s.favorites.Add(ctx, userID, listingID)
}

func (s *service) Remove(ctx context.Context, userID, listingID string) error {
	return s.favorites.Remove(ctx, userID, listingID)
}
