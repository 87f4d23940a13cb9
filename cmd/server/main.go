package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SohamNaik26/wealth-management/internal/api"
	"github.com/SohamNaik26/wealth-management/internal/auth"
	"github.com/SohamNaik26/wealth-management/internal/config"
	"github.com/SohamNaik26/wealth-management/internal/remote"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/simulator"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Session state
	st := store.New()
	if cfg.Seed.DemoTransactions {
		store.SeedDemoTransactions(st)
	}

	tokens, err := auth.NewTokenService(cfg.Session.FernetKey, cfg.Session.TTL)
	if err != nil {
		log.Fatalf("Failed to initialize session tokens: %v", err)
	}

	// Remote persistence is optional; without a base URL portfolios live
	// only in the session store.
	var remoteClient *remote.Client
	if cfg.Remote.BaseURL != "" {
		remoteClient = remote.NewClient(cfg.Remote.BaseURL)
		log.Printf("Portfolio persistence backend: %s", cfg.Remote.BaseURL)
	}

	// Create services
	services := api.Services{
		Dashboard:   service.NewDashboardService(st),
		Portfolio:   service.NewPortfolioService(st, remoteClient),
		Asset:       service.NewAssetService(st),
		Transaction: service.NewTransactionService(st),
		Goal:        service.NewGoalService(st),
		Search:      service.NewSearchService(st),
	}

	// Price simulator
	if cfg.Simulator.Enabled {
		sim := simulator.New(st, cfg.Simulator.Interval, cfg.Simulator.Tickers)
		if err := sim.Start(); err != nil {
			log.Fatalf("Failed to start price simulator: %v", err)
		}
		defer sim.Stop()
		log.Printf("Price simulator running every %s for %v", cfg.Simulator.Interval, cfg.Simulator.Tickers)
	}

	// Create router
	router := api.NewRouter(st, services, tokens, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
