package scheduling

import (
	"fmt"
	"regexp"

	"clinicbook/models"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTimeOfDay reports whether t is a canonical zero-padded "HH:MM" value.
func ValidTimeOfDay(t string) bool {
	return timeOfDayRe.MatchString(t)
}

// ValidateDayWindow checks the structural invariants of an operating window
// before it is stored: open windows need start < end, and a break must sit
// entirely inside the window with breakStart < breakEnd. Closed windows are
// accepted as-is.
func ValidateDayWindow(w models.DayWindow) error {
	if !w.IsOpen {
		return nil
	}
	if !ValidTimeOfDay(w.StartTime) || !ValidTimeOfDay(w.EndTime) {
		return fmt.Errorf("window times must be zero-padded HH:MM values")
	}
	if w.StartTime >= w.EndTime {
		return fmt.Errorf("window start %s must be before end %s", w.StartTime, w.EndTime)
	}
	if w.BreakStartTime == "" && w.BreakEndTime == "" {
		return nil
	}
	if !w.HasBreak() {
		return fmt.Errorf("break start and end must both be set")
	}
	if !ValidTimeOfDay(w.BreakStartTime) || !ValidTimeOfDay(w.BreakEndTime) {
		return fmt.Errorf("break times must be zero-padded HH:MM values")
	}
	if w.BreakStartTime >= w.BreakEndTime {
		return fmt.Errorf("break start %s must be before break end %s", w.BreakStartTime, w.BreakEndTime)
	}
	if w.BreakStartTime < w.StartTime || w.BreakEndTime > w.EndTime {
		return fmt.Errorf("break %s - %s must fall inside the window %s - %s",
			w.BreakStartTime, w.BreakEndTime, w.StartTime, w.EndTime)
	}
	return nil
}
