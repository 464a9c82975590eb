package schedule

import (
	"time"

	"clinic-booking-api/internal/model"
)

// AvailableSlots enumerates granularity-sized candidate slots across the
// working interval and drops any slot overlapping a booked appointment.
// The grid is anchored at the working-hours start, not at midnight, so a
// doctor starting at 09:15 gets slots at 09:15, 09:45, and so on. A slot is
// emitted as long as it starts before the working-hours end. Results are
// chronological, in UTC.
func AvailableSlots(working Interval, booked []model.Appointment, granularity time.Duration) []Interval {
	var free []Interval
	for t := working.Start; t.Before(working.End); t = t.Add(granularity) {
		slot := Interval{Start: t, End: t.Add(granularity)}
		if findConflict(slot, booked, "") == nil {
			free = append(free, slot)
		}
	}
	return free
}
