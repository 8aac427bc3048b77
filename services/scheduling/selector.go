package scheduling

import "clinicbook/models"

// FindAvailableDoctor scans doctors in their natural list order and returns
// the first one whose slot check passes, or nil when every doctor is busy.
// Doctors disabled administratively (Available == false) and doctors without
// a schedule entry for the weekday are skipped. First-in-list-order is the
// whole tie-break policy; callers must not read fairness into it.
func FindAvailableDoctor(
	doctors []models.Doctor,
	clinicDay models.DayWindow,
	date, startTime string,
	durationMinutes int,
	appointments []models.Appointment,
	excludeID string,
) *models.Doctor {
	weekday, err := WeekdayName(date)
	if err != nil {
		return nil
	}

	for i := range doctors {
		doc := &doctors[i]
		if !doc.Available {
			continue
		}
		day, ok := doc.Schedule[weekday]
		if !ok {
			continue
		}
		if IsSlotAvailable(SlotQuery{
			DoctorID:        doc.ID,
			Date:            date,
			StartTime:       startTime,
			DurationMinutes: durationMinutes,
			ClinicDay:       clinicDay,
			DoctorDay:       &day,
			Appointments:    appointments,
			ExcludeID:       excludeID,
		}) {
			return doc
		}
	}
	return nil
}
