package schedule

import "clinic-booking-api/internal/model"

// findConflict scans a doctor's appointments for one whose span overlaps
// the candidate, skipping excludeID (the appointment's own prior version on
// update). Appointments that merely touch the candidate's endpoints are not
// conflicts. Returns nil when the candidate is free.
//
// Linear scan: fine at the scale of one doctor's day, which is all the
// store hands us.
func findConflict(candidate Interval, existing []model.Appointment, excludeID string) *ConflictError {
	for i := range existing {
		a := &existing[i]
		if a.ID == excludeID {
			continue
		}
		if span := Span(a); candidate.Overlaps(span) {
			return &ConflictError{Candidate: candidate, Existing: span, ExistingID: a.ID}
		}
	}
	return nil
}
