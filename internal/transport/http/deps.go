package http

import (
	"github.com/swipehome/api/internal/event"
	jwtinfra "github.com/swipehome/api/internal/infrastructure/jwt"
	"github.com/swipehome/api/internal/localstore"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	RenterRepo       *localstore.IdentityRepo
	ListerRepo       *localstore.IdentityRepo
	AdminRepo        *localstore.IdentityRepo
	ListingRepo      *localstore.ListingRepo
	MatchRepo        *localstore.MatchRepo
	MessageRepo      *localstore.MessageRepo
	NotificationRepo *localstore.NotificationRepo
	ReportRepo       *localstore.ReportRepo
	FavoriteRepo     *localstore.FavoriteRepo
	Bus              *event.Bus
	JWTProvider      *jwtinfra.Provider
}
