package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/dashboard"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/treasury"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
)

type DashboardServiceImpl struct {
	userRepo        user.UserRepository
	transactionRepo transaction.TransactionRepository
	attendanceRepo  attendance.AttendanceRepository
	treasuryRepo    treasury.TreasuryRepository
	now             func() time.Time
}

func NewDashboardService(
	userRepo user.UserRepository,
	transactionRepo transaction.TransactionRepository,
	attendanceRepo attendance.AttendanceRepository,
	treasuryRepo treasury.TreasuryRepository,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		attendanceRepo:  attendanceRepo,
		treasuryRepo:    treasuryRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source for tests.
func (s *DashboardServiceImpl) WithClock(now func() time.Time) *DashboardServiceImpl {
	s.now = now
	return s
}

// CompanyStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) CompanyStats(ctx context.Context) (dashboard.CompanyStatsResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return dashboard.CompanyStatsResponse{}, err
	}
	if !act.IsAdmin() {
		return dashboard.CompanyStatsResponse{}, user.ErrAdminPrivilegeRequired
	}

	totalCash, err := s.treasuryRepo.Balance(ctx)
	if err != nil {
		return dashboard.CompanyStatsResponse{}, fmt.Errorf("failed to read cash pool: %w", err)
	}

	now := s.now()
	period := payroll.Period{Month: int(now.Month()), Year: now.Year()}
	start, end := period.Start(), period.End()

	txs, err := s.transactionRepo.List(ctx, transaction.Filter{})
	if err != nil {
		return dashboard.CompanyStatsResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	var owed, approvedSpend decimal.Decimal
	var pendingCount int
	for _, tx := range txs {
		if tx.Status == transaction.StatusPending {
			pendingCount++
			if tx.Kind == transaction.KindExpense {
				owed = owed.Add(tx.Amount)
			}
		}
		// Spend is the running total of every approved claim, not a
		// per-period figure; only the payroll estimate is month-scoped.
		if tx.Status == transaction.StatusApproved && tx.Kind == transaction.KindExpense {
			approvedSpend = approvedSpend.Add(tx.Amount)
		}
	}

	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return dashboard.CompanyStatsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var payrollEstimate decimal.Decimal
	for _, emp := range employees {
		payrollEstimate = payrollEstimate.Add(emp.BaseMonthlySalary)

		records, err := s.attendanceRepo.List(ctx, attendance.Filter{
			UserID:         emp.ID,
			ApprovalStatus: attendance.StatusApproved,
			From:           &start,
			To:             &end,
		})
		if err != nil {
			return dashboard.CompanyStatsResponse{}, fmt.Errorf("failed to list attendance: %w", err)
		}
		var overtimeHours float64
		for _, rec := range records {
			overtimeHours += rec.OvertimeHours
		}
		payrollEstimate = payrollEstimate.Add(emp.OvertimeHourlyRate.Mul(decimal.NewFromFloat(overtimeHours)))
	}

	return dashboard.CompanyStatsResponse{
		TotalCash:              totalCash,
		TotalEmployeeOwed:      owed,
		MonthlySpend:           approvedSpend,
		PendingApprovals:       pendingCount,
		MonthlyPayrollEstimate: payrollEstimate,
	}, nil
}
