package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SohamNaik26/wealth-management/internal/api/handlers"
	custommiddleware "github.com/SohamNaik26/wealth-management/internal/api/middleware"
	"github.com/SohamNaik26/wealth-management/internal/auth"
	"github.com/SohamNaik26/wealth-management/internal/config"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// Services bundles the service layer handed to the router.
type Services struct {
	Dashboard   *service.DashboardService
	Portfolio   *service.PortfolioService
	Asset       *service.AssetService
	Transaction *service.TransactionService
	Goal        *service.GoalService
	Search      *service.SearchService
}

// NewRouter creates and configures the HTTP router
func NewRouter(st *store.Store, svc Services, tokens *auth.TokenService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(st)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.SystemVersion)
		})

		sessionHandler := handlers.NewSessionHandler(tokens)
		r.Post("/session", sessionHandler.CreateSession)

		r.Route("/portfolios", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Get("/", portfolioHandler.Portfolios)
			r.Get("/{portfolioId}", portfolioHandler.Portfolio)

			// Mutations persist to the remote backend and require a session
			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireSession(tokens))
				r.Post("/", portfolioHandler.CreatePortfolio)
				r.Put("/{portfolioId}", portfolioHandler.UpdatePortfolio)
				r.Delete("/{portfolioId}", portfolioHandler.DeletePortfolio)
			})
		})

		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(svc.Asset)
			r.Get("/", assetHandler.Assets)
			r.Post("/", assetHandler.CreateAsset)
			r.Get("/{assetId}", assetHandler.Asset)
			r.Put("/{assetId}", assetHandler.UpdateAsset)
			r.Delete("/{assetId}", assetHandler.DeleteAsset)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Get("/{transactionId}", transactionHandler.Transaction)
			r.Put("/{transactionId}", transactionHandler.UpdateTransaction)
			r.Delete("/{transactionId}", transactionHandler.DeleteTransaction)
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(svc.Goal)
			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)
			r.Get("/{goalId}", goalHandler.Goal)
			r.Put("/{goalId}", goalHandler.UpdateGoal)
			r.Delete("/{goalId}", goalHandler.DeleteGoal)
		})

		dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
		r.Get("/dashboard/summary", dashboardHandler.Summary)

		searchHandler := handlers.NewSearchHandler(svc.Search)
		r.Get("/search", searchHandler.Search)
	})

	return r
}
