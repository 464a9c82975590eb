package model

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"09:00", 9, 0, true},
		{"17:30", 17, 30, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"25:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"0900", 0, 0, false},
		{"aa:bb", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if got.Hour != tt.hour || got.Minute != tt.minute {
				t.Errorf("got %02d:%02d, want %02d:%02d", got.Hour, got.Minute, tt.hour, tt.minute)
			}
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := tod.String(); got != "09:05" {
		t.Errorf("got %q, want %q", got, "09:05")
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	nine := TimeOfDay{Hour: 9}
	nineFifteen := TimeOfDay{Hour: 9, Minute: 15}
	ten := TimeOfDay{Hour: 10}

	if !nine.Before(nineFifteen) {
		t.Error("09:00 should be before 09:15")
	}
	if !nineFifteen.Before(ten) {
		t.Error("09:15 should be before 10:00")
	}
	if ten.Before(nine) {
		t.Error("10:00 should not be before 09:00")
	}
	if nine.Before(nine) {
		t.Error("a time is not before itself")
	}
}
