package model

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision. Construct it through
// ParseTimeOfDay so malformed input is rejected at the boundary instead of
// surfacing as string-slicing bugs deeper in.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q, want HH:MM", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Hour < u.Hour || (t.Hour == u.Hour && t.Minute < u.Minute)
}

// WorkingHours is a doctor's recurring daily availability window in local
// wall-clock time. Start < End is enforced when the doctor is created.
type WorkingHours struct {
	Start TimeOfDay
	End   TimeOfDay
}

type Doctor struct {
	ID             string
	Name           string
	Specialization string
	WorkingHours   WorkingHours
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Appointment starts at Start (stored in UTC) and runs for Duration minutes.
// The end time is always derived, never stored.
type Appointment struct {
	ID          string
	DoctorID    string
	Start       time.Time
	Duration    int
	Type        string
	PatientName string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Appointment) End() time.Time {
	return a.Start.Add(time.Duration(a.Duration) * time.Minute)
}
