package schedule

import (
	"errors"
	"testing"
	"time"

	"clinic-booking-api/internal/model"
)

var ist = time.FixedZone("UTC+05:30", 5*3600+30*60)

func TestClockAt(t *testing.T) {
	c := NewClock(ist)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, ist)

	got := c.At(day, model.TimeOfDay{Hour: 9, Minute: 0})
	want := time.Date(2025, 6, 2, 3, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At(09:00) = %v, want %v", got, want)
	}

	// a wall-clock time early enough to land on the previous UTC day
	got = c.At(day, model.TimeOfDay{Hour: 5, Minute: 0})
	want = time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At(05:00) = %v, want %v", got, want)
	}
}

func TestClockParseDate(t *testing.T) {
	c := NewClock(ist)

	day, err := c.ParseDate("2025-06-02")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 6, 2, 0, 0, 0, 0, ist)
	if !day.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", day, want)
	}

	for _, bad := range []string{"", "02-06-2025", "2025/06/02", "not-a-date"} {
		_, err := c.ParseDate(bad)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("ParseDate(%q): expected ValidationError, got %v", bad, err)
		}
	}
}

func TestClockFormatLocal(t *testing.T) {
	c := NewClock(ist)
	instant := time.Date(2025, 6, 2, 4, 30, 0, 0, time.UTC) // 10:00 local
	if got := c.FormatLocal(instant); got != "2025-06-02 10:00:00" {
		t.Errorf("FormatLocal = %q", got)
	}
}

func TestClockDayRange(t *testing.T) {
	c := NewClock(ist)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, ist)

	r := c.DayRange(day)
	wantStart := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("DayRange = [%v, %v), want [%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestClockDay(t *testing.T) {
	c := NewClock(ist)
	// 2025-06-01 23:00 UTC is already 2025-06-02 04:30 local
	instant := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	got := c.Day(instant)
	want := time.Date(2025, 6, 2, 0, 0, 0, 0, ist)
	if !got.Equal(want) {
		t.Errorf("Day = %v, want %v", got, want)
	}
}

func TestClockWorkingInterval(t *testing.T) {
	c := NewClock(ist)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, ist)
	wh := model.WorkingHours{
		Start: model.TimeOfDay{Hour: 9},
		End:   model.TimeOfDay{Hour: 17},
	}

	got := c.WorkingInterval(wh, day)
	if !got.Start.Equal(time.Date(2025, 6, 2, 3, 30, 0, 0, time.UTC)) {
		t.Errorf("working start = %v", got.Start)
	}
	if !got.End.Equal(time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC)) {
		t.Errorf("working end = %v", got.End)
	}
}
