package schedule

import (
	"time"

	"clinic-booking-api/internal/model"
)

const (
	// DateFormat is the calendar-date format accepted on the wire.
	DateFormat = "2006-01-02"
	// LocalFormat is the wall-clock display format for slot listings.
	LocalFormat = "2006-01-02 15:04:05"
)

// Clock converts between the clinic's local wall-clock and absolute
// instants. The location is injected (a fixed UTC offset in deployment
// config) rather than baked in, so the engine is correct for any locale.
type Clock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	return Clock{loc: loc}
}

// ParseDate parses a "YYYY-MM-DD" local calendar date.
func (c Clock) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s, c.loc)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: "want YYYY-MM-DD"}
	}
	return d, nil
}

// At pins a wall-clock time of day onto a local calendar day and returns the
// instant in UTC.
func (c Clock) At(day time.Time, tod model.TimeOfDay) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, c.loc).UTC()
}

// Day returns the local calendar day (local midnight) containing t.
func (c Clock) Day(t time.Time) time.Time {
	lt := t.In(c.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, c.loc)
}

// DayRange is the UTC span covering one local calendar day.
func (c Clock) DayRange(day time.Time) Interval {
	start := c.Day(day)
	return Interval{Start: start.UTC(), End: start.AddDate(0, 0, 1).UTC()}
}

// WorkingInterval is the doctor's working-hours span on the given local day,
// in UTC.
func (c Clock) WorkingInterval(wh model.WorkingHours, day time.Time) Interval {
	return Interval{Start: c.At(day, wh.Start), End: c.At(day, wh.End)}
}

// FormatLocal renders an instant as local wall-clock time for display.
func (c Clock) FormatLocal(t time.Time) string {
	return t.In(c.loc).Format(LocalFormat)
}
