package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned by the scheduling service. All are terminal for the
// current request; the transport layer translates them into responses.
var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// OutsideHoursError reports a candidate interval that does not fit inside
// the doctor's working hours for that day.
type OutsideHoursError struct {
	Candidate Interval
	Working   Interval
}

func (e *OutsideHoursError) Error() string {
	return fmt.Sprintf("appointment %s is outside working hours %s",
		formatSpan(e.Candidate), formatSpan(e.Working))
}

// ConflictError reports an existing appointment whose interval overlaps the
// candidate for the same doctor.
type ConflictError struct {
	Candidate  Interval
	Existing   Interval
	ExistingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("appointment %s conflicts with existing appointment %s at %s",
		formatSpan(e.Candidate), e.ExistingID, formatSpan(e.Existing))
}

func formatSpan(iv Interval) string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}
