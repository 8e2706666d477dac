package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (*PayrollServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore(decimal.Zero)
	svc := NewPayrollService(store.Users(), store.Transactions(), store.Attendance())
	return svc, store
}

func createUser(t *testing.T, store *memory.Store, name string, role user.Role, salary, otRate string) user.User {
	t.Helper()
	u := user.User{Name: name, PasswordHash: "x", Role: role}
	if role == user.RoleEmployee {
		u.BaseMonthlySalary = decimal.RequireFromString(salary)
		u.OvertimeHourlyRate = decimal.RequireFromString(otRate)
	}
	created, err := store.Users().Create(context.Background(), u)
	require.NoError(t, err)
	return created
}

func asUser(u user.User) context.Context {
	return actor.WithContext(context.Background(), actor.Actor{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
	})
}

func addShift(t *testing.T, store *memory.Store, u user.User, day time.Time, overtime float64, status attendance.ApprovalStatus) {
	t.Helper()
	out := day.Add(8*time.Hour + time.Duration(overtime*float64(time.Hour)))
	_, err := store.Attendance().Create(context.Background(), attendance.Record{
		UserID:         u.ID,
		Date:           day,
		CheckIn:        day,
		CheckOut:       &out,
		TotalHours:     attendance.StandardDayHours + overtime,
		OvertimeHours:  overtime,
		ApprovalStatus: status,
	})
	require.NoError(t, err)
}

func addTransaction(t *testing.T, store *memory.Store, u user.User, amount string, kind transaction.Kind, settlement transaction.SettlementMethod, status transaction.Status, day time.Time) {
	t.Helper()
	_, err := store.Transactions().Create(context.Background(), transaction.Transaction{
		UserID:     u.ID,
		UserName:   u.Name,
		Amount:     decimal.RequireFromString(amount),
		Kind:       kind,
		Settlement: settlement,
		Status:     status,
		Vendor:     "test",
		OccurredOn: day,
	})
	require.NoError(t, err)
}

func TestPayrollService_Compute_FullLine(t *testing.T) {
	svc, store := newTestService(t)
	admin := createUser(t, store, "Admin", user.RoleAdmin, "", "")
	emp := createUser(t, store, "jahed", user.RoleEmployee, "3500", "25")

	may := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	addShift(t, store, emp, may, 2, attendance.StatusApproved)
	addTransaction(t, store, emp, "85", transaction.KindExpense, transaction.SettlementCard, transaction.StatusApproved, may)
	addTransaction(t, store, emp, "200", transaction.KindTopUp, transaction.SettlementCash, transaction.StatusApproved, may)

	resp, err := svc.Compute(asUser(admin), payroll.ComputeRequest{Month: 5, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.InDelta(t, 2.0, line.OvertimeHours, 1e-9)
	assert.True(t, line.OvertimePay.Equal(decimal.NewFromInt(50)))
	assert.True(t, line.Reimbursements.Equal(decimal.NewFromInt(85)))
	assert.True(t, line.CashAdvances.Equal(decimal.NewFromInt(200)))
	// 3500 + 50 + 85 - 200
	assert.True(t, line.NetPay.Equal(decimal.NewFromInt(3435)), "net pay %s", line.NetPay)
	assert.True(t, resp.TotalNetPay.Equal(decimal.NewFromInt(3435)))
}

func TestPayrollService_Compute_IgnoresUnapprovedAndOutOfPeriod(t *testing.T) {
	svc, store := newTestService(t)
	admin := createUser(t, store, "Admin", user.RoleAdmin, "", "")
	emp := createUser(t, store, "jahed", user.RoleEmployee, "3500", "25")

	may := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC)

	// Unapproved overtime and pending claims are invisible to payroll.
	addShift(t, store, emp, may, 3, attendance.StatusPendingApproval)
	addTransaction(t, store, emp, "85", transaction.KindExpense, transaction.SettlementCard, transaction.StatusPending, may)
	// Approved, but in the previous period.
	addShift(t, store, emp, april, 2, attendance.StatusApproved)
	addTransaction(t, store, emp, "40", transaction.KindExpense, transaction.SettlementCard, transaction.StatusApproved, april)

	resp, err := svc.Compute(asUser(admin), payroll.ComputeRequest{Month: 5, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.InDelta(t, 0.0, line.OvertimeHours, 1e-9)
	assert.True(t, line.Reimbursements.IsZero())
	assert.True(t, line.NetPay.Equal(decimal.NewFromInt(3500)))
}

func TestPayrollService_Compute_DirectGrantsAreNotAdvances(t *testing.T) {
	svc, store := newTestService(t)
	admin := createUser(t, store, "Admin", user.RoleAdmin, "", "")
	emp := createUser(t, store, "shafiq", user.RoleEmployee, "4200", "30")

	may := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	// A COMPLETED direct grant is a gift outside the payroll cycle.
	addTransaction(t, store, emp, "300", transaction.KindTopUp, transaction.SettlementCash, transaction.StatusCompleted, may)

	resp, err := svc.Compute(asUser(admin), payroll.ComputeRequest{Month: 5, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	assert.True(t, resp.Lines[0].CashAdvances.IsZero())
	assert.True(t, resp.Lines[0].NetPay.Equal(decimal.NewFromInt(4200)))
}

func TestPayrollService_Compute_NetPayFlooredAtZero(t *testing.T) {
	svc, store := newTestService(t)
	admin := createUser(t, store, "Admin", user.RoleAdmin, "", "")
	emp := createUser(t, store, "jahed", user.RoleEmployee, "1000", "25")

	may := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	addTransaction(t, store, emp, "1500", transaction.KindTopUp, transaction.SettlementCash, transaction.StatusApproved, may)

	resp, err := svc.Compute(asUser(admin), payroll.ComputeRequest{Month: 5, Year: 2024})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	assert.True(t, resp.Lines[0].NetPay.IsZero())
}

func TestPayrollService_Compute_RequiresAdmin(t *testing.T) {
	svc, store := newTestService(t)
	emp := createUser(t, store, "jahed", user.RoleEmployee, "3500", "25")

	_, err := svc.Compute(asUser(emp), payroll.ComputeRequest{Month: 5, Year: 2024})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestPayrollService_MyLine(t *testing.T) {
	svc, store := newTestService(t)
	emp := createUser(t, store, "jamir", user.RoleEmployee, "3800", "27")

	may := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	addShift(t, store, emp, may, 1, attendance.StatusApproved)

	line, err := svc.MyLine(asUser(emp), payroll.ComputeRequest{Month: 5, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, line.UserID)
	assert.True(t, line.OvertimePay.Equal(decimal.NewFromInt(27)))
	assert.True(t, line.NetPay.Equal(decimal.NewFromInt(3827)))
}

func TestPayrollService_Compute_InvalidPeriod(t *testing.T) {
	svc, store := newTestService(t)
	admin := createUser(t, store, "Admin", user.RoleAdmin, "", "")

	_, err := svc.Compute(asUser(admin), payroll.ComputeRequest{Month: 13, Year: 2024})
	assert.Error(t, err)
}
