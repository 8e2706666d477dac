package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, user_id, date, check_in, check_out, latitude, longitude,
	total_hours, overtime_hours, approval_status, created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.Latitude,
		&rec.Longitude,
		&rec.TotalHours,
		&rec.OvertimeHours,
		&rec.ApprovalStatus,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendance_records (user_id, date, check_in, check_out, latitude, longitude,
			total_hours, overtime_hours, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + attendanceColumns

	return scanRecord(q.QueryRow(ctx, insertQuery,
		rec.UserID, rec.Date, rec.CheckIn, rec.CheckOut, rec.Latitude, rec.Longitude,
		rec.TotalHours, rec.OvertimeHours, rec.ApprovalStatus,
	))
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanRecord(q.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE attendance_records
		SET check_out = $1, total_hours = $2, overtime_hours = $3, approval_status = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + attendanceColumns

	updated, err := scanRecord(q.QueryRow(ctx, updateQuery,
		rec.CheckOut, rec.TotalHours, rec.OvertimeHours, rec.ApprovalStatus, rec.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return updated, nil
}

// GetOpenShift implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenShift(ctx context.Context, userID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanRecord(q.QueryRow(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE user_id = $1 AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
	`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrNoOpenShift
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argPos)
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.ApprovalStatus != "" {
		query += fmt.Sprintf(" AND approval_status = $%d", argPos)
		args = append(args, filter.ApprovalStatus)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date < $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.OpenOnly {
		query += " AND check_out IS NULL"
	}
	query += " ORDER BY check_in DESC, id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
