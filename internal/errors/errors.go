package errors

import "errors"

// Domain entity errors represent missing entities in the session store.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")
)

// Collaborator errors represent failures at the external boundary.
var (
	// ErrRemoteUnavailable indicates that the remote persistence backend
	// rejected or failed a call. The store is left in its last-known-good
	// state when this is returned.
	ErrRemoteUnavailable = errors.New("remote backend unavailable")

	// ErrMissingCredential indicates that a bearer credential was required
	// but absent or invalid.
	ErrMissingCredential = errors.New("missing or invalid credential")
)
