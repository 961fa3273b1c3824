// Package listing manages property records submitted by listers.
package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/pkg/id"
	"github.com/swipehome/api/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Listing, error)
	Get(ctx context.Context, listingID string) (*domain.Listing, error)
	Create(ctx context.Context, ownerID string, req domain.CreateListingRequest) (*domain.Listing, error)
	// Update applies the patch; only the owning lister may mutate a listing.
	Update(ctx context.Context, listingID, callerID string, req domain.UpdateListingRequest) (*domain.Listing, error)
}

type listingStore interface {
	List(ctx context.Context) ([]domain.Listing, error)
	Get(ctx context.Context, listingID string) (*domain.Listing, error)
	Put(ctx context.Context, l domain.Listing) error
	Update(ctx context.Context, listingID string, mutate func(*domain.Listing)) (*domain.Listing, error)
}

type ownerStore interface {
	Get(ctx context.Context, identityID string) (*domain.Identity, error)
}

type service struct {
	listings listingStore
	owners   ownerStore
}

func NewService(listings listingStore, owners ownerStore) Service {
	return &service{listings: listings, owners: owners}
}

func (s *service) List(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.List(ctx)
}

func (s *service) Get(ctx context.Context, listingID string) (*domain.Listing, error) {
	return s.listings.Get(ctx, listingID)
}

func (s *service) Create(ctx context.Context, ownerID string, req domain.CreateListingRequest) (*domain.Listing, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if _, err := s.owners.Get(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("owner %s: %w", ownerID, domain.ErrNotFound)
	}
	now := time.Now().UTC()
	l := domain.Listing{
		ID:          id.New(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Price:       req.Price,
		Size:        req.Size,
		Area:        req.Area,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Images:      req.Images,
		Features:    req.Features,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Features == nil {
		l.Features = []string{}
	}
	if err := s.listings.Put(ctx, l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *service) Update(ctx context.Context, listingID, callerID string, req domain.UpdateListingRequest) (*domain.Listing, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	existing, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, fmt.Errorf("listing %s belongs to another lister: %w", listingID, domain.ErrForbidden)
	}
	return s.listings.Update(ctx, listingID, func(l *domain.Listing) {
		if req.Title != nil {
			l.Title = *req.Title
		}
		if req.Price != nil {
			l.Price = *req.Price
		}
		if req.Size != nil {
			l.Size = *req.Size
		}
		if req.Area != nil {
			l.Area = *req.Area
		}
		if req.Bedrooms != nil {
			l.Bedrooms = *req.Bedrooms
		}
		if req.Bathrooms != nil {
			l.Bathrooms = *req.Bathrooms
		}
		if req.Images != nil {
			l.Images = *req.Images
		}
		if req.Features != nil {
			l.Features = *req.Features
		}
		if req.Description != nil {
			l.Description = *req.Description
		}
		l.UpdatedAt = time.Now().UTC()
	})
}
