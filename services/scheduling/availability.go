package scheduling

import "clinicbook/models"

// SlotQuery carries everything one bookability check needs. Appointments may
// contain rows for other doctors or dates; the check filters them itself so
// callers can pass a whole day's worth when scanning multiple doctors.
type SlotQuery struct {
	DoctorID        string
	Date            string // "YYYY-MM-DD"
	StartTime       string // "HH:MM"
	DurationMinutes int
	ClinicDay       models.DayWindow
	DoctorDay       *models.DayWindow // nil when the doctor has no window that weekday
	Appointments    []models.Appointment
	ExcludeID       string // appointment being edited, ignored during overlap checks
}

// IsSlotAvailable decides whether the doctor can start a DurationMinutes-long
// appointment at StartTime on Date. The slot must fit entirely inside the
// intersection of the clinic's and the doctor's windows, must not touch the
// clinic's break window, and must not overlap any live appointment for the
// same doctor and date. Cancelled appointments never occupy a slot.
func IsSlotAvailable(q SlotQuery) bool {
	if q.DoctorDay == nil || q.DurationMinutes <= 0 {
		return false
	}

	effectiveStart := maxTime(q.ClinicDay.StartTime, q.DoctorDay.StartTime)
	effectiveEnd := minTime(q.ClinicDay.EndTime, q.DoctorDay.EndTime)
	if effectiveStart >= effectiveEnd {
		return false
	}

	slotEnd := AddMinutes(q.StartTime, q.DurationMinutes)
	if q.StartTime < effectiveStart || slotEnd > effectiveEnd {
		return false
	}

	if q.ClinicDay.HasBreak() &&
		IntervalsOverlap(q.StartTime, slotEnd, q.ClinicDay.BreakStartTime, q.ClinicDay.BreakEndTime) {
		return false
	}

	for _, apt := range q.Appointments {
		if apt.ID == q.ExcludeID || apt.Status == models.StatusCancelled {
			continue
		}
		if apt.DoctorID != q.DoctorID || apt.Date != q.Date {
			continue
		}
		aptEnd := AddMinutes(apt.Time, apt.DurationMinutes)
		if IntervalsOverlap(q.StartTime, slotEnd, apt.Time, aptEnd) {
			return false
		}
	}

	return true
}
