package service

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// TransactionService handles transaction CRUD over the session store.
// The collection is append-only in spirit; edits and deletes are direct
// replacements. Asset names are resolved from the live asset collection
// with the stored denormalized copy as fallback.
type TransactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionService over the given store.
func NewTransactionService(s *store.Store) *TransactionService {
	return &TransactionService{store: s}
}

// TransactionUpdate carries the shallow-merge fields of an edit.
type TransactionUpdate struct {
	TransactionType *string
	Amount          *float64
	Date            *time.Time
	AssetID         *string
	AssetName       *string
	Notes           *string
}

// List returns all transactions in insertion order with asset names resolved.
func (s *TransactionService) List() []model.Transaction {
	snap := s.store.Snapshot()
	names := assetNameIndex(snap.Assets)

	transactions := snap.Transactions
	for i := range transactions {
		if transactions[i].AssetID != "" {
			transactions[i].AssetName = resolveName(names, transactions[i].AssetID, transactions[i].AssetName)
		}
	}
	return transactions
}

// Get retrieves a single transaction by ID.
func (s *TransactionService) Get(transactionID string) (model.Transaction, error) {
	snap := s.store.Snapshot()
	for _, tx := range snap.Transactions {
		if tx.ID == transactionID {
			if tx.AssetID != "" {
				tx.AssetName = resolveName(assetNameIndex(snap.Assets), tx.AssetID, tx.AssetName)
			}
			return tx, nil
		}
	}
	return model.Transaction{}, apperrors.ErrTransactionNotFound
}

// Create assigns an ID and appends the transaction to the store.
func (s *TransactionService) Create(tx model.Transaction) model.Transaction {
	tx.ID = uuid.New().String()
	s.store.UpdateTransactions(func(prev []model.Transaction) []model.Transaction {
		return append(prev, tx)
	})
	return tx
}

// Update shallow-merges the provided fields over the existing transaction.
func (s *TransactionService) Update(transactionID string, update TransactionUpdate) (model.Transaction, error) {
	current, err := s.Get(transactionID)
	if err != nil {
		return model.Transaction{}, err
	}

	if update.TransactionType != nil {
		current.TransactionType = *update.TransactionType
	}
	if update.Amount != nil {
		current.Amount = *update.Amount
	}
	if update.Date != nil {
		current.Date = *update.Date
	}
	if update.AssetID != nil {
		current.AssetID = *update.AssetID
	}
	if update.AssetName != nil {
		current.AssetName = *update.AssetName
	}
	if update.Notes != nil {
		current.Notes = *update.Notes
	}

	s.store.UpdateTransactions(func(prev []model.Transaction) []model.Transaction {
		for i := range prev {
			if prev[i].ID == transactionID {
				prev[i] = current
			}
		}
		return prev
	})
	return current, nil
}

// Delete removes a transaction from the store.
func (s *TransactionService) Delete(transactionID string) error {
	if _, err := s.Get(transactionID); err != nil {
		return err
	}
	s.store.UpdateTransactions(func(prev []model.Transaction) []model.Transaction {
		out := prev[:0]
		for _, tx := range prev {
			if tx.ID != transactionID {
				out = append(out, tx)
			}
		}
		return out
	})
	return nil
}

func assetNameIndex(assets []model.Asset) map[string]string {
	names := make(map[string]string, len(assets))
	for _, a := range assets {
		names[a.ID] = a.Name
	}
	return names
}
