package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	runInTx        database.TxRunner
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	runInTx database.TxRunner,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		runInTx:        runInTx,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Tests use this to pin shift durations.
func (a *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	a.now = now
	return a
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	// No location fix, no record. A timed-out capture must leave nothing
	// half-formed behind.
	if req.Latitude == nil || req.Longitude == nil {
		return attendance.RecordResponse{}, attendance.ErrLocationUnavailable
	}

	act, err := actor.FromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	u, err := a.userRepo.GetByID(ctx, act.UserID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if u.HasOpenShift() {
		return attendance.RecordResponse{}, attendance.ErrShiftAlreadyOpen
	}

	nowUTC := a.now()
	data := attendance.Record{
		UserID:         u.ID,
		Date:           nowUTC.Truncate(24 * time.Hour),
		CheckIn:        nowUTC,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		TotalHours:     0,
		OvertimeHours:  0,
		ApprovalStatus: attendance.StatusPendingApproval,
	}

	// The record and the back-reference become visible together or not at
	// all.
	var created attendance.Record
	err = a.runInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = a.attendanceRepo.Create(ctx, data)
		if txErr != nil {
			return fmt.Errorf("failed to create attendance record: %w", txErr)
		}
		return a.userRepo.SetActiveShift(ctx, u.ID, &created.ID)
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	created.UserName = &u.Name
	return attendance.ToResponse(created), nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.RecordResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	u, err := a.userRepo.GetByID(ctx, act.UserID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !u.HasOpenShift() {
		return attendance.RecordResponse{}, attendance.ErrNoOpenShift
	}

	rec, err := a.attendanceRepo.GetByID(ctx, *u.ActiveShiftID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !rec.IsOpen() {
		return attendance.RecordResponse{}, attendance.ErrNoOpenShift
	}

	nowUTC := a.now()
	totalHours := nowUTC.Sub(rec.CheckIn).Hours()
	if totalHours < 0 {
		totalHours = 0
	}
	overtimeHours := totalHours - attendance.StandardDayHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	rec.CheckOut = &nowUTC
	rec.TotalHours = totalHours
	rec.OvertimeHours = overtimeHours
	// Closing a shift always re-queues it for audit, whatever its prior
	// status was.
	rec.ApprovalStatus = attendance.StatusPendingApproval

	var updated attendance.Record
	err = a.runInTx(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = a.attendanceRepo.Update(ctx, rec)
		if txErr != nil {
			return fmt.Errorf("failed to close attendance record: %w", txErr)
		}
		return a.userRepo.SetActiveShift(ctx, u.ID, nil)
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	updated.UserName = &u.Name
	return attendance.ToResponse(updated), nil
}

// Approve implements attendance.AttendanceService. Approval marks the hours
// as audited; overtime pay is realized only at payroll aggregation.
func (a *AttendanceServiceImpl) Approve(ctx context.Context, recordID string) (attendance.RecordResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !act.IsAdmin() {
		return attendance.RecordResponse{}, user.ErrAdminPrivilegeRequired
	}

	rec, err := a.attendanceRepo.GetByID(ctx, recordID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec.ApprovalStatus = attendance.StatusApproved
	updated, err := a.attendanceRepo.Update(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to approve attendance record: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// ActiveShift implements attendance.AttendanceService. The elapsed figure is
// a pure projection of CheckIn at read time.
func (a *AttendanceServiceImpl) ActiveShift(ctx context.Context) (*attendance.ActiveShiftResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := a.userRepo.GetByID(ctx, act.UserID)
	if err != nil {
		return nil, err
	}
	if !u.HasOpenShift() {
		return nil, nil
	}

	rec, err := a.attendanceRepo.GetByID(ctx, *u.ActiveShiftID)
	if err != nil {
		return nil, err
	}

	elapsed := a.now().Sub(rec.CheckIn).Hours()
	if elapsed < 0 {
		elapsed = 0
	}

	return &attendance.ActiveShiftResponse{
		RecordID:     rec.ID,
		CheckIn:      rec.CheckIn.Format(time.RFC3339),
		ElapsedHours: elapsed,
	}, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !act.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	records, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return a.toResponses(ctx, records)
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context) ([]attendance.RecordResponse, error) {
	act, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.attendanceRepo.List(ctx, attendance.Filter{UserID: act.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return a.toResponses(ctx, records)
}

func (a *AttendanceServiceImpl) toResponses(ctx context.Context, records []attendance.Record) ([]attendance.RecordResponse, error) {
	names := make(map[string]string)
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		if _, ok := names[rec.UserID]; !ok {
			u, err := a.userRepo.GetByID(ctx, rec.UserID)
			if err == nil {
				names[rec.UserID] = u.Name
			}
		}
		if name, ok := names[rec.UserID]; ok {
			rec.UserName = &name
		}
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}
