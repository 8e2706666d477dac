package memory

import (
	"context"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
)

type transactionRepository struct {
	store *Store
}

func (r *transactionRepository) Create(ctx context.Context, tx transaction.Transaction) (transaction.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.nextTransactionID()
	tx.CreatedAt = time.Now().UTC()
	s.transactions[tx.ID] = tx
	s.txOrder = append(s.txOrder, tx.ID)
	return tx, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return transaction.Transaction{}, transaction.ErrTransactionNotFound
	}
	return tx, nil
}

// UpdateStatus is the idempotency boundary: the status check and the write
// happen under one lock, so a second decision on the same id always observes
// the terminal status and fails with ErrNotPending.
func (r *transactionRepository) UpdateStatus(ctx context.Context, id string, from, to transaction.Status, decidedAt time.Time) (transaction.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok {
		return transaction.Transaction{}, transaction.ErrTransactionNotFound
	}
	if tx.Status != from {
		return transaction.Transaction{}, transaction.ErrNotPending
	}
	tx.Status = to
	tx.DecidedAt = &decidedAt
	s.transactions[id] = tx
	return tx, nil
}

func (r *transactionRepository) List(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []transaction.Transaction
	for i := len(s.txOrder) - 1; i >= 0; i-- {
		tx := s.transactions[s.txOrder[i]]
		if !matchesTransaction(tx, filter) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func matchesTransaction(tx transaction.Transaction, filter transaction.Filter) bool {
	if filter.UserID != "" && tx.UserID != filter.UserID {
		return false
	}
	if filter.Kind != "" && tx.Kind != filter.Kind {
		return false
	}
	if filter.Status != "" && tx.Status != filter.Status {
		return false
	}
	if filter.From != nil && tx.OccurredOn.Before(*filter.From) {
		return false
	}
	if filter.To != nil && !tx.OccurredOn.Before(*filter.To) {
		return false
	}
	return true
}
