package memory

import (
	"context"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/treasury"
	"github.com/shopspring/decimal"
)

type treasuryRepository struct {
	store *Store
}

func (s *Store) Treasury() treasury.TreasuryRepository {
	return &treasuryRepository{store: s}
}

func (r *treasuryRepository) Balance(ctx context.Context) (decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cashPool, nil
}

func (r *treasuryRepository) Adjust(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cashPool = s.cashPool.Add(delta)
	return s.cashPool, nil
}
