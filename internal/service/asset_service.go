package service

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// AssetService handles asset CRUD over the session store. Assets are not
// persisted remotely. Portfolio names on returned assets are resolved from
// the live portfolio collection; the stored denormalized copy is only used
// when the referenced portfolio no longer exists.
type AssetService struct {
	store *store.Store
}

// NewAssetService creates a new AssetService over the given store.
func NewAssetService(s *store.Store) *AssetService {
	return &AssetService{store: s}
}

// AssetUpdate carries the shallow-merge fields of an edit. Nil fields are
// left unchanged on the existing entity.
type AssetUpdate struct {
	Name          *string
	AssetType     *string
	TickerSymbol  *string
	Quantity      *float64
	PurchasePrice *float64
	CurrentPrice  *float64
	PurchaseDate  *time.Time
	PortfolioID   *string
	PortfolioName *string
}

// List returns all assets in insertion order with portfolio names resolved.
func (s *AssetService) List() []model.Asset {
	snap := s.store.Snapshot()
	names := portfolioNameIndex(snap.Portfolios)

	assets := snap.Assets
	for i := range assets {
		assets[i].PortfolioName = resolveName(names, assets[i].PortfolioID, assets[i].PortfolioName)
	}
	return assets
}

// Get retrieves a single asset by ID with its portfolio name resolved.
func (s *AssetService) Get(assetID string) (model.Asset, error) {
	snap := s.store.Snapshot()
	for _, a := range snap.Assets {
		if a.ID == assetID {
			a.PortfolioName = resolveName(portfolioNameIndex(snap.Portfolios), a.PortfolioID, a.PortfolioName)
			return a, nil
		}
	}
	return model.Asset{}, apperrors.ErrAssetNotFound
}

// Create assigns an ID and appends the asset to the store.
func (s *AssetService) Create(a model.Asset) model.Asset {
	a.ID = uuid.New().String()
	s.store.UpdateAssets(func(prev []model.Asset) []model.Asset {
		return append(prev, a)
	})
	return a
}

// Update shallow-merges the provided fields over the existing asset.
func (s *AssetService) Update(assetID string, update AssetUpdate) (model.Asset, error) {
	current, err := s.Get(assetID)
	if err != nil {
		return model.Asset{}, err
	}

	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.AssetType != nil {
		current.AssetType = *update.AssetType
	}
	if update.TickerSymbol != nil {
		current.TickerSymbol = *update.TickerSymbol
	}
	if update.Quantity != nil {
		current.Quantity = *update.Quantity
	}
	if update.PurchasePrice != nil {
		current.PurchasePrice = *update.PurchasePrice
	}
	if update.CurrentPrice != nil {
		current.CurrentPrice = *update.CurrentPrice
	}
	if update.PurchaseDate != nil {
		current.PurchaseDate = *update.PurchaseDate
	}
	if update.PortfolioID != nil {
		current.PortfolioID = *update.PortfolioID
	}
	if update.PortfolioName != nil {
		current.PortfolioName = *update.PortfolioName
	}

	s.store.UpdateAssets(func(prev []model.Asset) []model.Asset {
		for i := range prev {
			if prev[i].ID == assetID {
				prev[i] = current
			}
		}
		return prev
	})
	return current, nil
}

// Delete removes an asset from the store.
func (s *AssetService) Delete(assetID string) error {
	if _, err := s.Get(assetID); err != nil {
		return err
	}
	s.store.UpdateAssets(func(prev []model.Asset) []model.Asset {
		out := prev[:0]
		for _, a := range prev {
			if a.ID != assetID {
				out = append(out, a)
			}
		}
		return out
	})
	return nil
}

func portfolioNameIndex(portfolios []model.Portfolio) map[string]string {
	names := make(map[string]string, len(portfolios))
	for _, p := range portfolios {
		names[p.ID] = p.Name
	}
	return names
}

// resolveName prefers the authoritative name of the referenced entity and
// falls back to the stored denormalized copy for dangling references.
func resolveName(names map[string]string, id, fallback string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fallback
}
