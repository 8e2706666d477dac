package attendance

import "errors"

// Attendance domain errors
var (
	ErrShiftAlreadyOpen    = errors.New("you already have an open shift")
	ErrNoOpenShift         = errors.New("you have no open shift to close")
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrLocationUnavailable = errors.New("location could not be captured")
)
