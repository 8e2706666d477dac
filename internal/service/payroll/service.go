package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/payroll"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
)

type PayrollServiceImpl struct {
	userRepo        user.UserRepository
	transactionRepo transaction.TransactionRepository
	attendanceRepo  attendance.AttendanceRepository
}

func NewPayrollService(
	userRepo user.UserRepository,
	transactionRepo transaction.TransactionRepository,
	attendanceRepo attendance.AttendanceRepository,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		attendanceRepo:  attendanceRepo,
	}
}

// Compute implements payroll.PayrollService.
func (s *PayrollServiceImpl) Compute(ctx context.Context, req payroll.ComputeRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !act.IsAdmin() {
		return payroll.PayrollResponse{}, user.ErrAdminPrivilegeRequired
	}

	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	period := payroll.Period{Month: req.Month, Year: req.Year}
	resp := payroll.PayrollResponse{Month: req.Month, Year: req.Year, Lines: make([]payroll.Line, 0, len(employees))}
	for _, emp := range employees {
		line, err := s.computeLine(ctx, emp, period)
		if err != nil {
			return payroll.PayrollResponse{}, err
		}
		resp.Lines = append(resp.Lines, line)
		resp.TotalNetPay = resp.TotalNetPay.Add(line.NetPay)
	}
	return resp, nil
}

// MyLine implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyLine(ctx context.Context, req payroll.ComputeRequest) (payroll.Line, error) {
	if err := req.Validate(); err != nil {
		return payroll.Line{}, err
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return payroll.Line{}, err
	}

	u, err := s.userRepo.GetByID(ctx, act.UserID)
	if err != nil {
		return payroll.Line{}, err
	}

	return s.computeLine(ctx, u, payroll.Period{Month: req.Month, Year: req.Year})
}

// computeLine reduces one employee's month. Only APPROVED records count:
// unapproved overtime, pending claims and pending top-ups are all invisible
// here. COMPLETED direct grants are gifts outside the payroll cycle and are
// excluded from cash advances.
func (s *PayrollServiceImpl) computeLine(ctx context.Context, emp user.User, period payroll.Period) (payroll.Line, error) {
	start, end := period.Start(), period.End()

	records, err := s.attendanceRepo.List(ctx, attendance.Filter{
		UserID:         emp.ID,
		ApprovalStatus: attendance.StatusApproved,
		From:           &start,
		To:             &end,
	})
	if err != nil {
		return payroll.Line{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	var overtimeHours float64
	for _, rec := range records {
		overtimeHours += rec.OvertimeHours
	}
	overtimePay := emp.OvertimeHourlyRate.Mul(decimal.NewFromFloat(overtimeHours))

	txs, err := s.transactionRepo.List(ctx, transaction.Filter{
		UserID: emp.ID,
		From:   &start,
		To:     &end,
	})
	if err != nil {
		return payroll.Line{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	var reimbursements, cashAdvances decimal.Decimal
	for _, tx := range txs {
		if tx.Status != transaction.StatusApproved {
			continue
		}
		switch {
		case tx.Kind == transaction.KindExpense && tx.Settlement == transaction.SettlementCard:
			reimbursements = reimbursements.Add(tx.Amount)
		case tx.Kind == transaction.KindTopUp:
			cashAdvances = cashAdvances.Add(tx.Amount)
		}
	}

	netPay := emp.BaseMonthlySalary.Add(overtimePay).Add(reimbursements).Sub(cashAdvances)
	if netPay.IsNegative() {
		netPay = decimal.Zero
	}

	return payroll.Line{
		UserID:         emp.ID,
		UserName:       emp.Name,
		BaseSalary:     emp.BaseMonthlySalary,
		OvertimeHours:  overtimeHours,
		OvertimePay:    overtimePay,
		Reimbursements: reimbursements,
		CashAdvances:   cashAdvances,
		NetPay:         netPay,
	}, nil
}
