package payroll

import (
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Period selects a payroll month. Lines are never stored; every computation
// is a fresh reduction over users, transactions and attendance records.
type Period struct {
	Month int
	Year  int
}

func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && t.Before(p.End())
}

type ComputeRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Line is one employee's net-pay figure for a period.
//
//	NetPay = max(0, BaseSalary + OvertimePay + Reimbursements - CashAdvances)
//
// Reimbursements cover APPROVED CARD expenses only; approved cash expenses
// already landed in the wallet and never reach payroll. Negative net pay is
// floored at zero rather than carried forward.
type Line struct {
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	OvertimeHours  float64         `json:"overtime_hours"`
	OvertimePay    decimal.Decimal `json:"overtime_pay"`
	Reimbursements decimal.Decimal `json:"reimbursements"`
	CashAdvances   decimal.Decimal `json:"cash_advances"`
	NetPay         decimal.Decimal `json:"net_pay"`
}

type PayrollResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Lines []Line `json:"lines"`

	TotalNetPay decimal.Decimal `json:"total_net_pay"`
}
