package memory

import (
	"context"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec.ID = s.nextRecordID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.records[rec.ID] = rec
	s.recOrder = append(s.recOrder, rec.ID)
	return rec, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.ID]; !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	rec.UpdatedAt = time.Now().UTC()
	s.records[rec.ID] = rec
	return rec, nil
}

func (r *attendanceRepository) GetOpenShift(ctx context.Context, userID string) (attendance.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.recOrder) - 1; i >= 0; i-- {
		rec := s.records[s.recOrder[i]]
		if rec.UserID == userID && rec.IsOpen() {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrNoOpenShift
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []attendance.Record
	for i := len(s.recOrder) - 1; i >= 0; i-- {
		rec := s.records[s.recOrder[i]]
		if !matchesRecord(rec, filter) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func matchesRecord(rec attendance.Record, filter attendance.Filter) bool {
	if filter.UserID != "" && rec.UserID != filter.UserID {
		return false
	}
	if filter.ApprovalStatus != "" && rec.ApprovalStatus != filter.ApprovalStatus {
		return false
	}
	if filter.From != nil && rec.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && !rec.Date.Before(*filter.To) {
		return false
	}
	if filter.OpenOnly && !rec.IsOpen() {
		return false
	}
	return true
}
