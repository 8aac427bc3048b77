package scheduling

import (
	"testing"

	"clinicbook/models"
)

func TestValidateDayWindow(t *testing.T) {
	tests := []struct {
		name    string
		window  models.DayWindow
		wantErr bool
	}{
		{"closed day needs nothing", models.DayWindow{Day: "Sunday", IsOpen: false}, false},
		{"plain open day", models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "17:00"}, false},
		{
			"open day with break",
			models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "18:00",
				BreakStartTime: "12:00", BreakEndTime: "13:00"},
			false,
		},
		{"inverted window", models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "17:00", EndTime: "09:00"}, true},
		{"empty window", models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "09:00"}, true},
		{"unpadded time", models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "9:00", EndTime: "17:00"}, true},
		{
			"break missing one side",
			models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "18:00",
				BreakStartTime: "12:00"},
			true,
		},
		{
			"inverted break",
			models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "18:00",
				BreakStartTime: "13:00", BreakEndTime: "12:00"},
			true,
		},
		{
			"break outside window",
			models.DayWindow{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "12:00",
				BreakStartTime: "12:00", BreakEndTime: "13:00"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDayWindow(tt.window)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDayWindow(%+v) error = %v, wantErr %v", tt.window, err, tt.wantErr)
			}
		})
	}
}
