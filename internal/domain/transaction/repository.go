package transaction

import (
	"context"
	"time"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	UserID string
	Kind   Kind
	Status Status
	From   *time.Time // inclusive, on OccurredOn
	To     *time.Time // exclusive, on OccurredOn
}

// TransactionRepository defines data access for ledger entries.
type TransactionRepository interface {
	// Create persists a new transaction and assigns its id
	Create(ctx context.Context, tx Transaction) (Transaction, error)

	// GetByID retrieves a transaction by id
	GetByID(ctx context.Context, id string) (Transaction, error)

	// UpdateStatus moves a PENDING transaction to a terminal status. It must
	// fail with ErrNotPending when the stored status is no longer PENDING so
	// the idempotency boundary holds even with concurrent deciders.
	UpdateStatus(ctx context.Context, id string, from, to Status, decidedAt time.Time) (Transaction, error)

	// List retrieves transactions matching the filter, newest first
	List(ctx context.Context, filter Filter) ([]Transaction, error)
}
