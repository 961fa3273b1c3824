package localstore

import (
	"context"
	"slices"
)

// FavoriteRepo stores per-user favorite listing ids as one blob holding a
// map of user id to listing ids.
type FavoriteRepo struct {
	store Blob
}

func NewFavoriteRepo(store Blob) *FavoriteRepo {
	return &FavoriteRepo{store: store}
}

func (r *FavoriteRepo) ListForUser(ctx context.Context, userID string) ([]string, error) {
	favs, err := readTable(ctx, r.store, tableFavorites, map[string][]string{})
	if err != nil {
		return nil, err
	}
	return favs[userID], nil
}

// Add is idempotent: favoriting an already-favorited listing is a no-op.
func (r *FavoriteRepo) Add(ctx context.Context, userID, listingID string) error {
	favs, err := readTable(ctx, r.store, tableFavorites, map[string][]string{})
	if err != nil {
		return err
	}
	if slices.Contains(favs[userID], listingID) {
		return nil
	}
	favs[userID] = append(favs[userID], listingID)
	return writeTable(ctx, r.store, tableFavorites, favs)
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, listingID string) error {
	favs, err := readTable(ctx, r.store, tableFavorites, map[string][]string{})
	if err != nil {
		return err
	}
	next := slices.DeleteFunc(favs[userID], func(id string) bool { return id == listingID })
	if len(next) == 0 {
		delete(favs, userID)
	} else {
		favs[userID] = next
	}
	return writeTable(ctx, r.store, tableFavorites, favs)
}
