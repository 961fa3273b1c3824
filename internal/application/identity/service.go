// Package identity issues and authenticates user records of the three kinds.
package identity

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/pkg/id"
	"github.com/swipehome/api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	// Authenticate scans listers, renters and administrators in that order
	// and returns the sanitized identity matching the credential pair.
	// A non-empty allowedKinds restricts which kinds may log in.
	Authenticate(ctx context.Context, email, password string, allowedKinds []domain.Kind) (*domain.Identity, error)
	Create(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error)
	Get(ctx context.Context, kind domain.Kind, identityID string) (*domain.Identity, error)
	List(ctx context.Context, kind domain.Kind) ([]domain.Identity, error)
	Update(ctx context.Context, kind domain.Kind, identityID string, req domain.UpdateIdentityRequest) (*domain.Identity, error)
}

type identityStore interface {
	List(ctx context.Context) ([]domain.Identity, error)
	Get(ctx context.Context, identityID string) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Put(ctx context.Context, ident domain.Identity) error
	Update(ctx context.Context, identityID string, mutate func(*domain.Identity)) (*domain.Identity, error)
}

// Stores groups the three identity tables.
type Stores struct {
	Renters        identityStore
	Listers        identityStore
	Administrators identityStore
}

type service struct {
	stores Stores
}

func NewService(stores Stores) Service {
	return &service{stores: stores}
}

func (s *service) byKind(kind domain.Kind) (identityStore, error) {
	switch kind {
	case domain.KindRenter:
		return s.stores.Renters, nil
	case domain.KindLister:
		return s.stores.Listers, nil
	case domain.KindAdministrator:
		return s.stores.Administrators, nil
	}
	return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrUnsupportedKind)
}

func (s *service) Authenticate(ctx context.Context, email, password string, allowedKinds []domain.Kind) (*domain.Identity, error) {
	for _, store := range []identityStore{s.stores.Listers, s.stores.Renters, s.stores.Administrators} {
		ident, err := store.GetByEmail(ctx, email)
		if err != nil {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)) != nil {
			continue
		}
		if len(allowedKinds) > 0 && !slices.Contains(allowedKinds, ident.Kind) {
			return nil, fmt.Errorf("kind %s may not access this area: %w", ident.Kind, domain.ErrForbidden)
		}
		safe := ident.Sanitized()
		return &safe, nil
	}
	return nil, fmt.Errorf("no identity matches the credential pair: %w", domain.ErrInvalidCredentials)
}

func (s *service) Create(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if req.Kind == domain.KindAdministrator {
		return nil, fmt.Errorf("administrators are fixture-only: %w", domain.ErrUnsupportedKind)
	}
	store, err := s.byKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if _, err := store.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%s: %w", req.Email, domain.ErrDuplicateEmail)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ident := domain.Identity{
		ID:            id.New(),
		Kind:          req.Kind,
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Bio:           req.Bio,
		Phone:         req.Phone,
		DesiredSize:   req.DesiredSize,
		BudgetCeiling: req.BudgetCeiling,
		PreferredArea: req.PreferredArea,
		Household:     req.Household,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := store.Put(ctx, ident); err != nil {
		return nil, err
	}
	safe := ident.Sanitized()
	return &safe, nil
}

func (s *service) Get(ctx context.Context, kind domain.Kind, identityID string) (*domain.Identity, error) {
	store, err := s.byKind(kind)
	if err != nil {
		return nil, err
	}
	ident, err := store.Get(ctx, identityID)
	if err != nil {
		return nil, err
	}
	safe := ident.Sanitized()
	return &safe, nil
}

func (s *service) List(ctx context.Context, kind domain.Kind) ([]domain.Identity, error) {
	store, err := s.byKind(kind)
	if err != nil {
		return nil, err
	}
	list, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	safe := make([]domain.Identity, len(list))
	for i := range list {
		safe[i] = list[i].Sanitized()
	}
	return safe, nil
}

func (s *service) Update(ctx context.Context, kind domain.Kind, identityID string, req domain.UpdateIdentityRequest) (*domain.Identity, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	store, err := s.byKind(kind)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		if existing, err := store.GetByEmail(ctx, *req.Email); err == nil && existing.ID != identityID {
			return nil, fmt.Errorf("%s: %w", *req.Email, domain.ErrDuplicateEmail)
		}
	}
	ident, err := store.Update(ctx, identityID, func(i *domain.Identity) {
		if req.Name != nil {
			i.Name = *req.Name
		}
		if req.Email != nil {
			i.Email = *req.Email
		}
		if req.Bio != nil {
			i.Bio = *req.Bio
		}
		if req.Phone != nil {
			i.Phone = req.Phone
		}
		if req.DesiredSize != nil {
			i.DesiredSize = req.DesiredSize
		}
		if req.BudgetCeiling != nil {
			i.BudgetCeiling = req.BudgetCeiling
		}
		if req.PreferredArea != nil {
			i.PreferredArea = *req.PreferredArea
		}
		if req.Household != nil {
			i.Household = *req.Household
		}
		i.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}
	safe := ident.Sanitized()
	return &safe, nil
}
