package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/swipehome/api/internal/config"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
	"github.com/swipehome/api/internal/fixtures"
	jwtinfra "github.com/swipehome/api/internal/infrastructure/jwt"
	"github.com/swipehome/api/internal/localstore"
	transporthttp "github.com/swipehome/api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	store, err := localstore.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open record store: %v", err)
	}

	// Seed the store from the embedded fixture bundle (reseeds wholesale when
	// the fixture version changed since the last run).
	bundle, err := fixtures.Load()
	if err != nil {
		log.Fatalf("load fixture bundle: %v", err)
	}
	seeded, err := localstore.Bootstrap(context.Background(), store, localstore.SeedConfig{
		Bundle:  bundle,
		Version: fixtures.Version,
	})
	if err != nil {
		log.Fatalf("bootstrap record store: %v", err)
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg.JWTSecret, time.Duration(cfg.JWTExpiryDays)*24*time.Hour)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	deps := &transporthttp.Deps{
		RenterRepo:       localstore.NewIdentityRepo(store, domain.KindRenter, seeded.Renters),
		ListerRepo:       localstore.NewIdentityRepo(store, domain.KindLister, seeded.Listers),
		AdminRepo:        localstore.NewIdentityRepo(store, domain.KindAdministrator, seeded.Administrators),
		ListingRepo:      localstore.NewListingRepo(store),
		MatchRepo:        localstore.NewMatchRepo(store),
		MessageRepo:      localstore.NewMessageRepo(store),
		NotificationRepo: localstore.NewNotificationRepo(store),
		ReportRepo:       localstore.NewReportRepo(store),
		FavoriteRepo:     localstore.NewFavoriteRepo(store),
		Bus:              event.NewBus(),
		JWTProvider:      jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
