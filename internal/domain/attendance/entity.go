package attendance

import "time"

type ApprovalStatus string

const (
	StatusPendingApproval ApprovalStatus = "PENDING_APPROVAL"
	StatusApproved        ApprovalStatus = "APPROVED"
)

// StandardDayHours is the fixed 8-hour day; everything beyond it on a single
// shift is overtime.
const StandardDayHours = 8.0

// Record is one shift. A missing CheckOut means the shift is open. TotalHours
// and OvertimeHours are written exactly once at punch-out and never
// recomputed; approval marks the hours as audited, not as paid.
type Record struct {
	ID             string
	UserID         string
	Date           time.Time // work day, midnight UTC
	CheckIn        time.Time
	CheckOut       *time.Time
	Latitude       *float64 // captured at check-in
	Longitude      *float64
	TotalHours     float64
	OvertimeHours  float64
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	UserName *string
}

func (r *Record) IsOpen() bool {
	return r.CheckOut == nil
}
