package fixtures

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(decimal.NewFromInt(250000))

	require.NoError(t, Seed(ctx, store.Users(), store.Transactions()))

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	admin, err := store.Users().GetByName(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin")))

	jahed, err := store.Users().GetByName(ctx, "jahed")
	require.NoError(t, err)
	assert.True(t, jahed.WalletBalance.Equal(decimal.NewFromInt(500)))

	txs, err := store.Transactions().List(ctx, transaction.Filter{})
	require.NoError(t, err)
	require.Len(t, txs, 3)

	pending, err := store.Transactions().List(ctx, transaction.Filter{Status: transaction.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Hardware Store", pending[0].Vendor)
	require.Len(t, pending[0].LineItems, 1)
	assert.Equal(t, "Welding Rods", pending[0].LineItems[0].Description)
}

func TestSeed_TwiceFails(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(decimal.NewFromInt(250000))

	require.NoError(t, Seed(ctx, store.Users(), store.Transactions()))
	assert.Error(t, Seed(ctx, store.Users(), store.Transactions()))
}
