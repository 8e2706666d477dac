package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (*AttendanceServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore(decimal.Zero)
	svc := NewAttendanceService(store.Attendance(), store.Users(), database.Passthrough())
	return svc, store
}

func createEmployee(t *testing.T, store *memory.Store, name string) user.User {
	t.Helper()
	u, err := store.Users().Create(context.Background(), user.User{
		Name:         name,
		PasswordHash: "x",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return u
}

func createAdmin(t *testing.T, store *memory.Store) user.User {
	t.Helper()
	u, err := store.Users().Create(context.Background(), user.User{
		Name:         "Admin",
		PasswordHash: "x",
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)
	return u
}

func asUser(u user.User) context.Context {
	return actor.WithContext(context.Background(), actor.Actor{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
	})
}

func fix() (*float64, *float64) {
	lat, lng := 25.276987, 55.296249
	return &lat, &lng
}

func TestAttendanceService_PunchIn_OpensShift(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	lat, lng := fix()
	rec, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPendingApproval), rec.ApprovalStatus)
	assert.Nil(t, rec.CheckOut)

	u, err := store.Users().GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	require.NotNil(t, u.ActiveShiftID)
	assert.Equal(t, rec.ID, *u.ActiveShiftID)
}

func TestAttendanceService_PunchIn_NoLocation(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	_, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{})
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)

	// Nothing half-formed left behind.
	u, err := store.Users().GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Nil(t, u.ActiveShiftID)
}

func TestAttendanceService_PunchIn_SecondShiftRejected(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	lat, lng := fix()
	_, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	require.NoError(t, err)

	_, err = svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	assert.ErrorIs(t, err, attendance.ErrShiftAlreadyOpen)
}

func TestAttendanceService_PunchOut_NoOpenShift(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	_, err := svc.PunchOut(asUser(emp))
	assert.ErrorIs(t, err, attendance.ErrNoOpenShift)
}

func TestAttendanceService_PunchOut_ExactStandardDayHasNoOvertime(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	start := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return start })

	lat, lng := fix()
	_, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return start.Add(8 * time.Hour) })
	rec, err := svc.PunchOut(asUser(emp))
	require.NoError(t, err)

	assert.InDelta(t, 8.0, rec.TotalHours, 1e-9)
	assert.InDelta(t, 0.0, rec.OvertimeHours, 1e-9)

	u, err := store.Users().GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Nil(t, u.ActiveShiftID)
}

func TestAttendanceService_PunchOut_MinutePastStandardDayIsOvertime(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	start := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return start })

	lat, lng := fix()
	_, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return start.Add(8*time.Hour + time.Minute) })
	rec, err := svc.PunchOut(asUser(emp))
	require.NoError(t, err)

	assert.InDelta(t, 1.0/60.0, rec.OvertimeHours, 1e-9)
}

func TestAttendanceService_ActiveShift_ProjectsElapsed(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	start := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return start })

	lat, lng := fix()
	_, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return start.Add(90 * time.Minute) })
	active, err := svc.ActiveShift(asUser(emp))
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.InDelta(t, 1.5, active.ElapsedHours, 1e-9)

	// After punch-out the projection disappears.
	_, err = svc.PunchOut(asUser(emp))
	require.NoError(t, err)
	active, err = svc.ActiveShift(asUser(emp))
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestAttendanceService_Approve_RequiresAdmin(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")
	admin := createAdmin(t, store)

	start := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return start })

	lat, lng := fix()
	opened, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return start.Add(9 * time.Hour) })
	_, err = svc.PunchOut(asUser(emp))
	require.NoError(t, err)

	_, err = svc.Approve(asUser(emp), opened.ID)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	approved, err := svc.Approve(asUser(admin), opened.ID)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusApproved), approved.ApprovalStatus)
	// Approval audits the hours, it never recomputes them.
	assert.InDelta(t, 1.0, approved.OvertimeHours, 1e-9)
}

func TestAttendanceService_ListMine_NewestFirst(t *testing.T) {
	svc, store := newTestService(t)
	emp := createEmployee(t, store, "jahed")

	lat, lng := fix()
	for day := 20; day <= 22; day++ {
		start := time.Date(2024, 5, day, 8, 0, 0, 0, time.UTC)
		svc.WithClock(func() time.Time { return start })
		_, err := svc.PunchIn(asUser(emp), attendance.PunchInRequest{Latitude: lat, Longitude: lng})
		require.NoError(t, err)
		svc.WithClock(func() time.Time { return start.Add(8 * time.Hour) })
		_, err = svc.PunchOut(asUser(emp))
		require.NoError(t, err)
	}

	mine, err := svc.ListMine(asUser(emp))
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "2024-05-22", mine[0].Date)
	assert.Equal(t, "2024-05-20", mine[2].Date)
}
