package treasury

import (
	"context"

	"github.com/shopspring/decimal"
)

// TreasuryRepository holds the single company cash pool. Direct grants debit
// it; everything else only reads it.
type TreasuryRepository interface {
	// Balance returns the current cash pool balance
	Balance(ctx context.Context) (decimal.Decimal, error)

	// Adjust applies a signed delta and returns the new balance
	Adjust(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error)
}
