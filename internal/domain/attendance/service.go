package attendance

import "context"

// AttendanceService is the shift lifecycle: at most one open shift per user,
// hours derived once at punch-out, approval as a separate audited step with
// no pay effect (overtime pay is realized at payroll aggregation).
type AttendanceService interface {
	PunchIn(ctx context.Context, req PunchInRequest) (RecordResponse, error)
	PunchOut(ctx context.Context) (RecordResponse, error)
	Approve(ctx context.Context, recordID string) (RecordResponse, error)
	ActiveShift(ctx context.Context) (*ActiveShiftResponse, error)
	List(ctx context.Context, filter Filter) ([]RecordResponse, error)
	ListMine(ctx context.Context) ([]RecordResponse, error)
}
