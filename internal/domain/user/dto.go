package user

import (
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name               string          `json:"name"`
	Password           string          `json:"password"`
	InitialBalance     decimal.Decimal `json:"initial_balance"`
	BaseMonthlySalary  decimal.Decimal `json:"base_monthly_salary"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	AvatarURL          *string         `json:"avatar_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	} else if !validator.IsValidLoginName(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be 2-50 characters (letters, digits, spaces, '.', '_', '-')"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if r.BaseMonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_monthly_salary", Message: "must be non-negative"})
	}
	if r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Role               string          `json:"role"`
	WalletBalance      decimal.Decimal `json:"wallet_balance"`
	BaseMonthlySalary  decimal.Decimal `json:"base_monthly_salary"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	AvatarURL          *string         `json:"avatar_url,omitempty"`
	ActiveShiftID      *string         `json:"active_shift_id,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Role:               string(u.Role),
		WalletBalance:      u.WalletBalance,
		BaseMonthlySalary:  u.BaseMonthlySalary,
		OvertimeHourlyRate: u.OvertimeHourlyRate,
		AvatarURL:          u.AvatarURL,
		ActiveShiftID:      u.ActiveShiftID,
	}
}
