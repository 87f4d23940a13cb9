package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/remote"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// PortfolioService handles portfolio CRUD over the session store. When a
// remote client is configured, create/update/delete reconcile with the
// persistence backend first: the store setter is only called with the
// backend's result on success and is left untouched on failure.
type PortfolioService struct {
	store  *store.Store
	remote *remote.Client // nil disables remote reconciliation
}

// NewPortfolioService creates a new PortfolioService. remoteClient may be
// nil, in which case portfolios live only in the session store.
func NewPortfolioService(s *store.Store, remoteClient *remote.Client) *PortfolioService {
	return &PortfolioService{store: s, remote: remoteClient}
}

// PortfolioUpdate carries the shallow-merge fields of an edit. Nil fields
// are left unchanged on the existing entity.
type PortfolioUpdate struct {
	Name        *string
	Description *string
	TotalValue  *float64
}

// List returns all portfolios in insertion order.
func (s *PortfolioService) List() []model.Portfolio {
	return s.store.Portfolios()
}

// Get retrieves a single portfolio by ID.
func (s *PortfolioService) Get(portfolioID string) (model.Portfolio, error) {
	for _, p := range s.store.Portfolios() {
		if p.ID == portfolioID {
			return p, nil
		}
	}
	return model.Portfolio{}, apperrors.ErrPortfolioNotFound
}

// Create assigns an ID and creation time, reconciles with the backend when
// configured, and appends the result to the store.
func (s *PortfolioService) Create(ctx context.Context, token string, p model.Portfolio) (model.Portfolio, error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()

	if s.remote != nil {
		created, err := s.remote.CreatePortfolio(ctx, token, p)
		if err != nil {
			return model.Portfolio{}, err
		}
		p = created
	}

	s.store.UpdatePortfolios(func(prev []model.Portfolio) []model.Portfolio {
		return append(prev, p)
	})
	return p, nil
}

// Update shallow-merges the provided fields over the existing portfolio.
func (s *PortfolioService) Update(ctx context.Context, token, portfolioID string, update PortfolioUpdate) (model.Portfolio, error) {
	current, err := s.Get(portfolioID)
	if err != nil {
		return model.Portfolio{}, err
	}

	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.TotalValue != nil {
		current.TotalValue = *update.TotalValue
	}

	if s.remote != nil {
		updated, err := s.remote.UpdatePortfolio(ctx, token, current)
		if err != nil {
			return model.Portfolio{}, err
		}
		current = updated
	}

	s.store.UpdatePortfolios(func(prev []model.Portfolio) []model.Portfolio {
		for i := range prev {
			if prev[i].ID == portfolioID {
				prev[i] = current
			}
		}
		return prev
	})
	return current, nil
}

// Delete removes a portfolio. Assets referencing it are not cascaded; their
// denormalized portfolio name remains as a display fallback.
func (s *PortfolioService) Delete(ctx context.Context, token, portfolioID string) error {
	if _, err := s.Get(portfolioID); err != nil {
		return err
	}

	if s.remote != nil {
		if err := s.remote.DeletePortfolio(ctx, token, portfolioID); err != nil {
			return err
		}
	}

	s.store.UpdatePortfolios(func(prev []model.Portfolio) []model.Portfolio {
		out := prev[:0]
		for _, p := range prev {
			if p.ID != portfolioID {
				out = append(out, p)
			}
		}
		return out
	})
	return nil
}
