// Package fixtures loads the demo dataset for local runs of the portal: the
// admin account, three workshop employees with wallet floats, and a few
// ledger entries in representative states.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
)

type seedUser struct {
	name     string
	password string
	role     user.Role
	balance  string
	salary   string
	otRate   string
}

var seedUsers = []seedUser{
	{name: "Admin", password: "admin", role: user.RoleAdmin},
	{name: "jahed", password: "jahed123", role: user.RoleEmployee, balance: "500.00", salary: "3500", otRate: "25"},
	{name: "jamir", password: "jamir123", role: user.RoleEmployee, balance: "750.00", salary: "3800", otRate: "27"},
	{name: "shafiq", password: "shafiq123", role: user.RoleEmployee, balance: "1000.00", salary: "4200", otRate: "30"},
}

// Seed provisions the demo users and transactions. It is meant for an empty
// memory store; seeding an already-populated store returns ErrNameTaken on
// the first duplicate.
func Seed(ctx context.Context, userRepo user.UserRepository, transactionRepo transaction.TransactionRepository) error {
	byName := make(map[string]user.User, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		u := user.User{
			Name:         su.name,
			PasswordHash: string(hash),
			Role:         su.role,
		}
		if su.role == user.RoleEmployee {
			u.WalletBalance = decimal.RequireFromString(su.balance)
			u.BaseMonthlySalary = decimal.RequireFromString(su.salary)
			u.OvertimeHourlyRate = decimal.RequireFromString(su.otRate)
			avatar := fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", su.name)
			u.AvatarURL = &avatar
		}

		created, err := userRepo.Create(ctx, u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", su.name, err)
		}
		byName[su.name] = created
	}

	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	decidedAt := day("2024-05-21")
	last4 := "4455"

	seedTxs := []transaction.Transaction{
		{
			UserID:     byName["jahed"].ID,
			UserName:   "jahed",
			Amount:     decimal.RequireFromString("150.00"),
			Kind:       transaction.KindExpense,
			Settlement: transaction.SettlementCash,
			Status:     transaction.StatusApproved,
			Vendor:     "Industrial Gas Co",
			Category:   "Welding Materials",
			OccurredOn: day("2024-05-20"),
			DecidedAt:  &decidedAt,
		},
		{
			UserID:     byName["jamir"].ID,
			UserName:   "jamir",
			Amount:     decimal.RequireFromString("85.00"),
			Kind:       transaction.KindExpense,
			Settlement: transaction.SettlementCard,
			Status:     transaction.StatusApproved,
			Vendor:     "ENOC Fuel",
			Category:   "Vehicle/Fuel",
			CardLast4:  &last4,
			OccurredOn: day("2024-05-19"),
			DecidedAt:  &decidedAt,
		},
		{
			UserID:     byName["shafiq"].ID,
			UserName:   "shafiq",
			Amount:     decimal.RequireFromString("320.00"),
			Kind:       transaction.KindExpense,
			Settlement: transaction.SettlementCash,
			Status:     transaction.StatusPending,
			Vendor:     "Hardware Store",
			Category:   "Industrial Tools",
			LineItems: []transaction.LineItem{
				{Description: "Welding Rods", Quantity: 5, UnitPrice: decimal.RequireFromString("64.00")},
			},
			OccurredOn: day("2024-05-18"),
		},
	}

	for _, tx := range seedTxs {
		if _, err := transactionRepo.Create(ctx, tx); err != nil {
			return fmt.Errorf("seed transaction for %s: %w", tx.UserName, err)
		}
	}
	return nil
}
