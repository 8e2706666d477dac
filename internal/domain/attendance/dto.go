package attendance

import (
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
)

type PunchInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Validate checks coordinate ranges when a fix is present. Absence of a fix
// is handled by the service as ErrLocationUnavailable, not as a field error.
func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	UserName       *string  `json:"user_name,omitempty"`
	Date           string   `json:"date"`
	CheckIn        string   `json:"check_in"`
	CheckOut       *string  `json:"check_out,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	TotalHours     float64  `json:"total_hours"`
	OvertimeHours  float64  `json:"overtime_hours"`
	ApprovalStatus string   `json:"approval_status"`
}

// ActiveShiftResponse is the read-only live projection of an open shift.
// ElapsedHours is recomputed from CheckIn on every read and holds no
// authoritative state.
type ActiveShiftResponse struct {
	RecordID     string  `json:"record_id"`
	CheckIn      string  `json:"check_in"`
	ElapsedHours float64 `json:"elapsed_hours"`
}

func ToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:             rec.ID,
		UserID:         rec.UserID,
		UserName:       rec.UserName,
		Date:           rec.Date.Format("2006-01-02"),
		CheckIn:        rec.CheckIn.Format(time.RFC3339),
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
		TotalHours:     rec.TotalHours,
		OvertimeHours:  rec.OvertimeHours,
		ApprovalStatus: string(rec.ApprovalStatus),
	}
	if rec.CheckOut != nil {
		formatted := rec.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &formatted
	}
	return resp
}
