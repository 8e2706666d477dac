package user

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository defines data access for users. The store is the single owner
// of the user collection; wallet balances and the open-shift back-reference
// are mutated only through these methods, never by direct field assignment.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByName retrieves a user by its case-insensitive login name
	GetByName(ctx context.Context, name string) (User, error)

	// List retrieves all users
	List(ctx context.Context) ([]User, error)

	// ListEmployees retrieves all users with the EMPLOYEE role
	ListEmployees(ctx context.Context) ([]User, error)

	// AdjustWallet applies a signed delta to a user's wallet balance
	AdjustWallet(ctx context.Context, id string, delta decimal.Decimal) (User, error)

	// SetActiveShift sets or clears the open-shift back-reference
	SetActiveShift(ctx context.Context, id string, shiftID *string) error
}
