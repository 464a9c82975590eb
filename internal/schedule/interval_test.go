package schedule

import (
	"testing"
	"time"
)

func iv(startMin, endMin int) Interval {
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: base.Add(time.Duration(startMin) * time.Minute),
		End:   base.Add(time.Duration(endMin) * time.Minute),
	}
}

func TestContains(t *testing.T) {
	outer := iv(540, 1020) // 09:00–17:00

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"fully inside", iv(600, 630), true},
		{"equal", iv(540, 1020), true},
		{"touching start", iv(540, 570), true},
		{"touching end", iv(990, 1020), true},
		{"starts before", iv(539, 570), false},
		{"ends after", iv(990, 1021), false},
		{"fully outside", iv(0, 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := iv(600, 630) // 10:00–10:30

	tests := []struct {
		name string
		b    Interval
		want bool
	}{
		{"identical", iv(600, 630), true},
		{"partial front", iv(585, 615), true},
		{"partial back", iv(615, 645), true},
		{"engulfing", iv(570, 660), true},
		{"inside", iv(610, 620), true},
		{"touching before", iv(570, 600), false},
		{"touching after", iv(630, 660), false},
		{"disjoint", iv(700, 730), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// overlap is symmetric
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}
