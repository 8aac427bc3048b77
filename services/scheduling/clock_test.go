package scheduling

import "testing"

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{"zero", "09:00", 0, "09:00"},
		{"within hour", "09:00", 30, "09:30"},
		{"across hour", "09:45", 30, "10:15"},
		{"ninety", "10:00", 90, "11:30"},
		{"single digit hour stays padded", "08:05", 10, "08:15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMinutes(tt.start, tt.minutes); got != tt.want {
				t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.start, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"09:00", "10:00", -1},
		{"10:00", "09:00", 1},
		{"09:30", "09:30", 0},
		{"09:59", "10:00", -1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"disjoint", "09:00", "09:30", "10:00", "10:30", false},
		{"identical", "09:00", "09:30", "09:00", "09:30", true},
		{"partial", "09:00", "09:31", "09:30", "10:00", true},
		{"contained", "09:00", "10:00", "09:15", "09:45", true},
		{"touching end to start", "09:00", "09:30", "09:30", "10:00", false},
		{"touching start to end", "09:30", "10:00", "09:00", "09:30", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntervalsOverlap(tt.startA, tt.endA, tt.startB, tt.endB); got != tt.want {
				t.Errorf("IntervalsOverlap(%q, %q, %q, %q) = %v, want %v",
					tt.startA, tt.endA, tt.startB, tt.endB, got, tt.want)
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	got, err := WeekdayName("2025-01-06")
	if err != nil {
		t.Fatalf("WeekdayName returned error: %v", err)
	}
	if got != "Monday" {
		t.Errorf("WeekdayName(2025-01-06) = %q, want Monday", got)
	}

	if _, err := WeekdayName("06-01-2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
