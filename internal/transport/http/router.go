package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swipehome/api/internal/application/favorite"
	"github.com/swipehome/api/internal/application/identity"
	"github.com/swipehome/api/internal/application/listing"
	"github.com/swipehome/api/internal/application/match"
	"github.com/swipehome/api/internal/application/message"
	"github.com/swipehome/api/internal/application/notification"
	"github.com/swipehome/api/internal/application/report"
	"github.com/swipehome/api/internal/config"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/transport/http/handler"
	appmiddleware "github.com/swipehome/api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter wires services over the record store and returns the application
// router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	// Bounded wait: no request may hang on the store indefinitely.
	r.Use(chimiddleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10 — applied to the public credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	identitySvc := identity.NewService(identity.Stores{
		Renters:        deps.RenterRepo,
		Listers:        deps.ListerRepo,
		Administrators: deps.AdminRepo,
	})
	listingSvc := listing.NewService(deps.ListingRepo, deps.ListerRepo)
	matchSvc := match.NewService(deps.MatchRepo, identitySvc, deps.ListingRepo, deps.Bus)
	messageSvc := message.NewService(deps.MessageRepo, deps.MatchRepo, deps.Bus)
	notifSvc := notification.NewService(deps.NotificationRepo)
	reportSvc := report.NewService(deps.ReportRepo, deps.AdminRepo, deps.Bus)
	favoriteSvc := favorite.NewService(deps.FavoriteRepo, deps.ListingRepo)

	// Match, message and report writes reach the notification table through
	// the bus, never directly.
	notification.NewDispatcher(notifSvc).Register(deps.Bus)

	healthH := handler.NewHealthHandler()
	sessionH := handler.NewSessionHandler(identitySvc, deps.JWTProvider)
	identityH := handler.NewIdentityHandler(identitySvc, deps.JWTProvider)
	listingH := handler.NewListingHandler(listingSvc)
	matchH := handler.NewMatchHandler(matchSvc)
	messageH := handler.NewMessageHandler(messageSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	reportH := handler.NewReportHandler(reportSvc)
	favoriteH := handler.NewFavoriteHandler(favoriteSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.With(sensitiveRL.Limit).Post("/identities", identityH.Register)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/identities/{kind}/{id}", identityH.Get)
			r.Put("/identities/{kind}/{id}", identityH.Update)

			r.Get("/listings", listingH.List)
			r.Get("/listings/{id}", listingH.Get)
			r.Post("/listings", listingH.Create)
			r.Put("/listings/{id}", listingH.Update)

			r.Get("/matches", matchH.List)
			r.Post("/matches", matchH.Create)
			r.Delete("/matches/{id}", matchH.Unmatch)
			r.Get("/matches/{id}/messages", messageH.List)
			r.Post("/matches/{id}/messages", messageH.Append)

			r.Get("/notifications", notifH.List)
			r.Put("/notifications/{id}/read", notifH.MarkRead)

			r.Post("/reports", reportH.Create)

			r.Get("/favorites", favoriteH.List)
			r.Put("/favorites/{listingID}", favoriteH.Add)
			r.Delete("/favorites/{listingID}", favoriteH.Remove)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireKind(domain.KindAdministrator))

				r.Get("/identities/{kind}", identityH.List)
				r.Get("/reports", reportH.List)
			})
		})
	})

	return r
}
