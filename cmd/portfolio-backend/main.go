// The portfolio-backend binary is the persistence service the dashboard
// reconciles portfolio mutations against. It stores portfolios in SQLite
// and gates every mutation on the same bearer tokens the dashboard mints.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SohamNaik26/wealth-management/internal/api/middleware"
	"github.com/SohamNaik26/wealth-management/internal/api/response"
	"github.com/SohamNaik26/wealth-management/internal/auth"
	"github.com/SohamNaik26/wealth-management/internal/config"
	"github.com/SohamNaik26/wealth-management/internal/database"
	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/repository"
	"github.com/SohamNaik26/wealth-management/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Tokens must be verifiable with the same key the dashboard mints with,
	// so SESSION_FERNET_KEY has to be shared between the two processes.
	tokens, err := auth.NewTokenService(cfg.Session.FernetKey, cfg.Session.TTL)
	if err != nil {
		log.Fatalf("Failed to initialize session tokens: %v", err)
	}

	repo := repository.NewPortfolioRepository(db)
	router := newRouter(db, repo, tokens)

	server := &http.Server{
		Addr:         cfg.Backend.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting portfolio backend on %s", cfg.Backend.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		log.Println("Shutting down portfolio backend...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Portfolio backend exited")
}

func newRouter(db *sql.DB, repo *repository.PortfolioRepository, tokens *auth.TokenService) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/system/health", func(w http.ResponseWriter, _ *http.Request) {
			if err := database.HealthCheck(db); err != nil {
				response.RespondError(w, http.StatusServiceUnavailable, "database unavailable", err.Error())
				return
			}
			response.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		})

		r.Route("/portfolios", func(r chi.Router) {
			r.Use(middleware.RequireSession(tokens))

			r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
				portfolios, err := repo.GetPortfolios()
				if err != nil {
					response.RespondError(w, http.StatusInternalServerError, "Failed to list portfolios", err.Error())
					return
				}
				response.RespondJSON(w, http.StatusOK, portfolios)
			})

			r.Get("/{portfolioId}", func(w http.ResponseWriter, r *http.Request) {
				id, ok := portfolioID(w, r)
				if !ok {
					return
				}
				p, err := repo.GetPortfolioOnID(id)
				if err != nil {
					respondRepoError(w, err, "Failed to retrieve portfolio")
					return
				}
				response.RespondJSON(w, http.StatusOK, p)
			})

			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				p, ok := decodePortfolio(w, r)
				if !ok {
					return
				}
				if p.ID == "" {
					p.ID = uuid.NewString()
				}
				if p.CreatedAt.IsZero() {
					p.CreatedAt = time.Now().UTC()
				}
				if err := repo.CreatePortfolio(p); err != nil {
					response.RespondError(w, http.StatusInternalServerError, "Failed to create portfolio", err.Error())
					return
				}
				log.Printf("Portfolio %s created by %s", p.ID, middleware.SubjectFromContext(r.Context()))
				response.RespondJSON(w, http.StatusCreated, p)
			})

			r.Put("/{portfolioId}", func(w http.ResponseWriter, r *http.Request) {
				id, ok := portfolioID(w, r)
				if !ok {
					return
				}
				p, ok := decodePortfolio(w, r)
				if !ok {
					return
				}
				p.ID = id
				if err := repo.UpdatePortfolio(p); err != nil {
					respondRepoError(w, err, "Failed to update portfolio")
					return
				}
				stored, err := repo.GetPortfolioOnID(p.ID)
				if err != nil {
					respondRepoError(w, err, "Failed to retrieve portfolio")
					return
				}
				response.RespondJSON(w, http.StatusOK, stored)
			})

			r.Delete("/{portfolioId}", func(w http.ResponseWriter, r *http.Request) {
				id, ok := portfolioID(w, r)
				if !ok {
					return
				}
				if err := repo.DeletePortfolio(id); err != nil {
					respondRepoError(w, err, "Failed to delete portfolio")
					return
				}
				response.RespondJSON(w, http.StatusNoContent, nil)
			})
		})
	})

	return r
}

func decodePortfolio(w http.ResponseWriter, r *http.Request) (model.Portfolio, bool) {
	var p model.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return model.Portfolio{}, false
	}
	if p.Name == "" {
		response.RespondFieldErrors(w, map[string]string{"name": "name is required"})
		return model.Portfolio{}, false
	}
	return p, true
}

// portfolioID pulls the portfolio ID out of the route and rejects anything
// that is not a UUID before it reaches the repository.
func portfolioID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "portfolioId")
	if err := validation.ValidateUUID(id); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid portfolio id", err.Error())
		return "", false
	}
	return id, true
}

func respondRepoError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, apperrors.ErrPortfolioNotFound) {
		response.RespondError(w, http.StatusNotFound, message, err.Error())
		return
	}
	response.RespondError(w, http.StatusInternalServerError, message, err.Error())
}
