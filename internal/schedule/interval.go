package schedule

import (
	"time"

	"clinic-booking-api/internal/model"
)

// Interval is a half-open span of time [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether inner lies entirely within outer. Touching a
// boundary counts as inside, so an appointment ending exactly at the
// working-hours end is still contained.
func (outer Interval) Contains(inner Interval) bool {
	return !inner.Start.Before(outer.Start) && !outer.End.Before(inner.End)
}

// Overlaps reports whether the two spans share any instant. Half-open
// semantics: intervals that merely touch at an endpoint do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Span is the interval [Start, Start+Duration) occupied by an appointment.
func Span(a *model.Appointment) Interval {
	return Interval{Start: a.Start, End: a.End()}
}
