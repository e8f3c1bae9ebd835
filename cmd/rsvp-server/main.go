package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"panel-rsvp/internal/analytics"
	"panel-rsvp/internal/auth"
	"panel-rsvp/internal/config"
	"panel-rsvp/internal/handler"
	"panel-rsvp/internal/rsvp"
	"panel-rsvp/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("component", "server").Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize storage
	stores, err := buildStores(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer stores.close()

	admin := auth.NewAdmin(cfg.AdminSecretKey, cfg.AdminSessionTTL)
	api := handler.NewAPI(
		rsvp.NewService(stores.rsvps, stores.visits),
		analytics.NewLogger(stores.beacon),
		admin,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(handler.RequestLogger(log), gin.Recovery())
	handler.SetupRoutes(router, api)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("store", cfg.StoreBackend).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// stores bundles the per-role store handles. With Supabase, the
// analytics beacon writes with the anon key while RSVP inserts and
// admin reads use the service-role key; the sqlite backend has no key
// separation.
type stores struct {
	rsvps   storage.RSVPStore
	visits  storage.VisitStore
	beacon  storage.VisitStore
	closeFn func() error
}

func (s stores) close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

func buildStores(cfg config.Config) (stores, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		store, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{rsvps: store, visits: store, beacon: store, closeFn: store.Close}, nil
	default:
		service := storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		anon := storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		return stores{rsvps: service, visits: service, beacon: anon}, nil
	}
}
