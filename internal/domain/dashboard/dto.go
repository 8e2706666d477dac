package dashboard

import "github.com/shopspring/decimal"

// CompanyStatsResponse is the admin dashboard summary, recomputed from the
// store on every read. MonthlySpend keeps its historical name but is the
// all-time sum of approved expense claims. MonthlyPayrollEstimate is base
// salaries plus overtime pay only - reimbursements and advances are
// deliberately excluded from this top-line figure, unlike the per-employee
// payroll table.
type CompanyStatsResponse struct {
	TotalCash              decimal.Decimal `json:"total_cash"`
	TotalEmployeeOwed      decimal.Decimal `json:"total_employee_owed"`
	MonthlySpend           decimal.Decimal `json:"monthly_spend"`
	PendingApprovals       int             `json:"pending_approvals"`
	MonthlyPayrollEstimate decimal.Decimal `json:"monthly_payroll_estimate"`
}
