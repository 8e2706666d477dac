package postgresql

import (
	"context"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/treasury"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type treasuryRepositoryImpl struct {
	db *database.DB
}

func NewTreasuryRepository(db *database.DB) treasury.TreasuryRepository {
	return &treasuryRepositoryImpl{db: db}
}

// Balance implements treasury.TreasuryRepository.
func (r *treasuryRepositoryImpl) Balance(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var balance decimal.Decimal
	err := q.QueryRow(ctx, `SELECT balance FROM treasury WHERE id = TRUE`).Scan(&balance)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// Adjust implements treasury.TreasuryRepository.
func (r *treasuryRepositoryImpl) Adjust(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var balance decimal.Decimal
	err := q.QueryRow(ctx,
		`UPDATE treasury SET balance = balance + $1 WHERE id = TRUE RETURNING balance`, delta,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
