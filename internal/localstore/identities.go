package localstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/swipehome/api/internal/domain"
)

// IdentityRepo serves one identity table (renters, listers or administrators).
// It carries its fixture seed so an absent table is repopulated on first
// access instead of surfacing as an empty population.
type IdentityRepo struct {
	store Blob
	table string
	seed  []domain.Identity
}

func NewIdentityRepo(store Blob, kind domain.Kind, seed []domain.Identity) *IdentityRepo {
	return &IdentityRepo{store: store, table: identityTable(kind), seed: seed}
}

func identityTable(kind domain.Kind) string {
	switch kind {
	case domain.KindRenter:
		return tableRenters
	case domain.KindLister:
		return tableListers
	default:
		return tableAdministrators
	}
}

// List returns the full table, seeding it from fixtures when absent.
func (r *IdentityRepo) List(ctx context.Context) ([]domain.Identity, error) {
	data, ok, err := r.store.Get(ctx, r.table)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := writeTable(ctx, r.store, r.table, r.seed); err != nil {
			return nil, err
		}
		return append([]domain.Identity{}, r.seed...), nil
	}
	return decodeInto(data, r.table, []domain.Identity{})
}

func (r *IdentityRepo) Get(ctx context.Context, id string) (*domain.Identity, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("identity %s: %w", id, domain.ErrNotFound)
}

func (r *IdentityRepo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Email, email) {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("identity %s: %w", email, domain.ErrNotFound)
}

// Put prepends a new identity to the table.
func (r *IdentityRepo) Put(ctx context.Context, ident domain.Identity) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	return writeTable(ctx, r.store, r.table, append([]domain.Identity{ident}, list...))
}

// Update applies mutate to the identity with the given id and persists the
// table. Returns the updated record.
func (r *IdentityRepo) Update(ctx context.Context, id string, mutate func(*domain.Identity)) (*domain.Identity, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			mutate(&list[i])
			if err := writeTable(ctx, r.store, r.table, list); err != nil {
				return nil, err
			}
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("identity %s: %w", id, domain.ErrNotFound)
}
