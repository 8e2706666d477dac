package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
)

func asUser(u user.User) context.Context {
	return actor.WithContext(context.Background(), actor.Actor{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
	})
}

func TestDashboardService_CompanyStats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(decimal.NewFromInt(250000))
	svc := NewDashboardService(store.Users(), store.Transactions(), store.Attendance(), store.Treasury())

	now := time.Date(2024, 5, 25, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return now })

	admin, err := store.Users().Create(ctx, user.User{Name: "Admin", PasswordHash: "x", Role: user.RoleAdmin})
	require.NoError(t, err)
	emp, err := store.Users().Create(ctx, user.User{
		Name:               "jahed",
		PasswordHash:       "x",
		Role:               user.RoleEmployee,
		BaseMonthlySalary:  decimal.NewFromInt(3500),
		OvertimeHourlyRate: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	inPeriod := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	// One pending cash claim (owed + pending count), two approved claims
	// across two months (spend counts both), one pending top-up (pending
	// count only).
	mk := func(amount string, kind transaction.Kind, status transaction.Status, day time.Time) {
		_, err := store.Transactions().Create(ctx, transaction.Transaction{
			UserID:     emp.ID,
			UserName:   emp.Name,
			Amount:     decimal.RequireFromString(amount),
			Kind:       kind,
			Settlement: transaction.SettlementCash,
			Status:     status,
			Vendor:     "test",
			OccurredOn: day,
		})
		require.NoError(t, err)
	}
	mk("320", transaction.KindExpense, transaction.StatusPending, inPeriod)
	mk("150", transaction.KindExpense, transaction.StatusApproved, inPeriod)
	mk("90", transaction.KindExpense, transaction.StatusApproved, lastMonth)
	mk("200", transaction.KindTopUp, transaction.StatusPending, inPeriod)

	out := inPeriod.Add(10 * time.Hour)
	_, err = store.Attendance().Create(ctx, attendance.Record{
		UserID:         emp.ID,
		Date:           inPeriod,
		CheckIn:        inPeriod,
		CheckOut:       &out,
		TotalHours:     10,
		OvertimeHours:  2,
		ApprovalStatus: attendance.StatusApproved,
	})
	require.NoError(t, err)

	stats, err := svc.CompanyStats(asUser(admin))
	require.NoError(t, err)

	assert.True(t, stats.TotalCash.Equal(decimal.NewFromInt(250000)))
	assert.True(t, stats.TotalEmployeeOwed.Equal(decimal.NewFromInt(320)))
	assert.True(t, stats.MonthlySpend.Equal(decimal.NewFromInt(240)))
	assert.Equal(t, 2, stats.PendingApprovals)
	// 3500 base + 2h x 25
	assert.True(t, stats.MonthlyPayrollEstimate.Equal(decimal.NewFromInt(3550)), "estimate %s", stats.MonthlyPayrollEstimate)
}

func TestDashboardService_CompanyStats_SpendIsAllTime(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(decimal.Zero)
	svc := NewDashboardService(store.Users(), store.Transactions(), store.Attendance(), store.Treasury())
	svc.WithClock(func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) })

	admin, err := store.Users().Create(ctx, user.User{Name: "Admin", PasswordHash: "x", Role: user.RoleAdmin})
	require.NoError(t, err)
	emp, err := store.Users().Create(ctx, user.User{Name: "jahed", PasswordHash: "x", Role: user.RoleEmployee})
	require.NoError(t, err)

	_, err = store.Transactions().Create(ctx, transaction.Transaction{
		UserID:     emp.ID,
		UserName:   emp.Name,
		Amount:     decimal.NewFromInt(150),
		Kind:       transaction.KindExpense,
		Settlement: transaction.SettlementCash,
		Status:     transaction.StatusApproved,
		Vendor:     "Industrial Gas Co",
		OccurredOn: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	stats, err := svc.CompanyStats(asUser(admin))
	require.NoError(t, err)
	assert.True(t, stats.MonthlySpend.Equal(decimal.NewFromInt(150)), "spend %s", stats.MonthlySpend)
}

func TestDashboardService_CompanyStats_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(decimal.Zero)
	svc := NewDashboardService(store.Users(), store.Transactions(), store.Attendance(), store.Treasury())

	emp, err := store.Users().Create(ctx, user.User{Name: "jahed", PasswordHash: "x", Role: user.RoleEmployee})
	require.NoError(t, err)

	_, err = svc.CompanyStats(asUser(emp))
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}
