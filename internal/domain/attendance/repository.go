package attendance

import (
	"context"
	"time"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	UserID         string
	ApprovalStatus ApprovalStatus
	From           *time.Time // inclusive, on Date
	To             *time.Time // exclusive, on Date
	OpenOnly       bool
}

// AttendanceRepository defines data access for shift records.
type AttendanceRepository interface {
	// Create persists a new record and assigns its id
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id string) (Record, error)

	// Update overwrites an existing record
	Update(ctx context.Context, rec Record) (Record, error)

	// GetOpenShift retrieves the user's open record, if any
	GetOpenShift(ctx context.Context, userID string) (Record, error)

	// List retrieves records matching the filter, newest first
	List(ctx context.Context, filter Filter) ([]Record, error)
}
