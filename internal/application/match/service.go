// Package match creates and retires mutual-interest relationships between
// two identities, optionally anchored to a listing.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
	"github.com/swipehome/api/internal/pkg/id"
	"github.com/swipehome/api/internal/pkg/validate"
)

type Service interface {
	// List returns the active matches, most recent first.
	List(ctx context.Context) ([]domain.Match, error)
	Get(ctx context.Context, matchID string) (*domain.Match, error)
	// Create writes the match and publishes MatchCreated, which fans out one
	// notification to each participant. The fan-out is best-effort: a failed
	// notification never unwinds the match itself.
	Create(ctx context.Context, req domain.CreateMatchRequest) (*domain.Match, error)
	// Unmatch retires the match durably. Its message thread is kept.
	Unmatch(ctx context.Context, matchID string) error
}

type matchStore interface {
	List(ctx context.Context) ([]domain.Match, error)
	Get(ctx context.Context, matchID string) (*domain.Match, error)
	Put(ctx context.Context, m domain.Match) error
	Update(ctx context.Context, matchID string, mutate func(*domain.Match)) (*domain.Match, error)
}

type identityGetter interface {
	Get(ctx context.Context, kind domain.Kind, identityID string) (*domain.Identity, error)
}

type listingGetter interface {
	Get(ctx context.Context, listingID string) (*domain.Listing, error)
}

type publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

type service struct {
	matches    matchStore
	identities identityGetter
	listings   listingGetter
	bus        publisher
}

func NewService(matches matchStore, identities identityGetter, listings listingGetter, bus publisher) Service {
	return &service{matches: matches, identities: identities, listings: listings, bus: bus}
}

func (s *service) List(ctx context.Context) ([]domain.Match, error) {
	all, err := s.matches.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Match, 0, len(all))
	for _, m := range all {
		if m.Status == domain.MatchActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (s *service) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	return s.matches.Get(ctx, matchID)
}

func (s *service) Create(ctx context.Context, req domain.CreateMatchRequest) (*domain.Match, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if req.UserA.ID == req.UserB.ID {
		return nil, fmt.Errorf("participants must be distinct identities: %w", domain.ErrBadRequest)
	}
	userA, err := s.identities.Get(ctx, req.UserA.Kind, req.UserA.ID)
	if err != nil {
		return nil, err
	}
	userB, err := s.identities.Get(ctx, req.UserB.Kind, req.UserB.ID)
	if err != nil {
		return nil, err
	}
	if req.ListingID != nil {
		if _, err := s.listings.Get(ctx, *req.ListingID); err != nil {
			return nil, err
		}
	}

	m := domain.Match{
		ID:        id.New(),
		Users:     [2]domain.Identity{userA.Sanitized(), userB.Sanitized()},
		ListingID: req.ListingID,
		Status:    domain.MatchActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.matches.Put(ctx, m); err != nil {
		return nil, err
	}
	if err := s.bus.Publish(ctx, event.MatchCreated{Match: m}); err != nil {
		slog.Warn("match notification fan-out incomplete", "match_id", m.ID, "err", err)
	}
	return &m, nil
}

func (s *service) Unmatch(ctx context.Context, matchID string) error {
	_, err := s.matches.Update(ctx, matchID, func(m *domain.Match) {
		m.Status = domain.MatchEnded
	})
	return err
}
