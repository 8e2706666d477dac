package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Approves claims, grants top-ups, runs payroll
	RoleEmployee Role = "EMPLOYEE" // Submits claims, clocks shifts
)

// User is an identity plus its wallet. WalletBalance is the float of cash the
// employee is deemed to be holding: approved cash expenses reconcile it back
// toward zero, top-ups increase it. Amounts are AED.
type User struct {
	ID                 string
	Name               string // case-insensitive login key
	PasswordHash       string
	Role               Role
	WalletBalance      decimal.Decimal
	BaseMonthlySalary  decimal.Decimal
	OvertimeHourlyRate decimal.Decimal
	AvatarURL          *string
	ActiveShiftID      *string // set while the user has an open shift
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) HasOpenShift() bool {
	return u.ActiveShiftID != nil && *u.ActiveShiftID != ""
}
