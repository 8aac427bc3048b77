package scheduling

import (
	"fmt"
	"time"

	"clinicbook/models"
)

// DefaultHorizonDays is how far into the future a booking may be made when
// the caller configures nothing else.
const DefaultHorizonDays = 14

// BookingRequest is one validation attempt. It is constructed per call and
// never persisted. An empty DoctorID means "auto-assign any available
// doctor"; ExcludeAppointmentID is set when re-validating a reschedule so the
// appointment does not conflict with itself.
type BookingRequest struct {
	DoctorID             string
	Date                 string // "YYYY-MM-DD"
	StartTime            string // "HH:MM"
	Services             []ServiceRef
	ExcludeAppointmentID string
}

// AcceptedBooking is the successful outcome: the bound doctor (explicit or
// auto-assigned) plus the resolved slot.
type AcceptedBooking struct {
	DoctorID        string
	Date            string
	StartTime       string
	DurationMinutes int
}

// ScheduleContext is the read-only collaborator data one validation needs:
// the clinic's window for the requested weekday, the doctor directory in its
// natural order, and the appointments already booked for the requested date.
// Callers fetch appointments with a narrow by-date query, never "everything".
type ScheduleContext struct {
	ClinicDay    models.DayWindow
	Doctors      []models.Doctor
	Appointments []models.Appointment
}

// ValidatorConfig carries the tunables. The zero value means the 14-day
// horizon anchored at the current wall-clock date, with the package default
// fallback duration.
type ValidatorConfig struct {
	HorizonDays            int
	DefaultDurationMinutes int
	Now                    time.Time
}

// ValidateBooking is the single entry point used before persisting a new
// appointment or accepting a reschedule. Every rejection is a *BookingError
// with a specific code; any other returned error means malformed input. The
// break-window check runs before the per-doctor availability check even
// though the availability check would also catch it, so a lunch-hour request
// reports the break conflict instead of a generic "doctor unavailable".
func ValidateBooking(req BookingRequest, env ScheduleContext, cfg ValidatorConfig) (AcceptedBooking, error) {
	var accepted AcceptedBooking

	totalDuration := ResolveTotalDurationWith(req.Services, cfg.DefaultDurationMinutes)
	if totalDuration <= 0 {
		return accepted, NewBookingError(RejectDurationUnresolved,
			"could not determine a positive total duration for the requested services")
	}

	// Non-canonical times like "9:00" compare lexically above every window
	// bound and would slide past both the overlap checks and the unique slot
	// index, so they are refused outright.
	if !ValidTimeOfDay(req.StartTime) {
		return accepted, fmt.Errorf("invalid start time %q: want zero-padded HH:MM", req.StartTime)
	}

	reqDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return accepted, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}

	if reqDate.Before(today) {
		return accepted, NewBookingError(RejectDateInPast,
			fmt.Sprintf("requested date %s is in the past", req.Date))
	}
	if reqDate.After(today.AddDate(0, 0, horizon)) {
		return accepted, NewBookingError(RejectTooFarAhead,
			fmt.Sprintf("requested date %s is beyond the %d-day booking horizon", req.Date, horizon))
	}

	if !env.ClinicDay.IsOpen {
		return accepted, NewBookingError(RejectClinicClosed,
			fmt.Sprintf("the clinic is closed on %s", reqDate.Weekday()))
	}

	slotEnd := AddMinutes(req.StartTime, totalDuration)
	if env.ClinicDay.HasBreak() &&
		IntervalsOverlap(req.StartTime, slotEnd, env.ClinicDay.BreakStartTime, env.ClinicDay.BreakEndTime) {
		return accepted, NewBookingError(RejectBreakTimeConflict,
			fmt.Sprintf("the slot overlaps the clinic break (%s - %s)",
				env.ClinicDay.BreakStartTime, env.ClinicDay.BreakEndTime))
	}

	doctorID := req.DoctorID
	if doctorID != "" {
		doctor := findDoctor(env.Doctors, doctorID)
		if doctor == nil || !doctor.Available {
			return accepted, NewBookingError(RejectDoctorUnavailable,
				fmt.Sprintf("doctor %s is not accepting bookings", doctorID))
		}
		weekday, err := WeekdayName(req.Date)
		if err != nil {
			return accepted, err
		}
		day, ok := doctor.Schedule[weekday]
		if !ok {
			return accepted, NewBookingError(RejectDoctorUnavailable,
				fmt.Sprintf("doctor %s does not work on %s", doctorID, weekday))
		}
		if !IsSlotAvailable(SlotQuery{
			DoctorID:        doctorID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: totalDuration,
			ClinicDay:       env.ClinicDay,
			DoctorDay:       &day,
			Appointments:    env.Appointments,
			ExcludeID:       req.ExcludeAppointmentID,
		}) {
			return accepted, NewBookingError(RejectDoctorUnavailable,
				fmt.Sprintf("doctor %s cannot take a %d-minute appointment at %s on %s",
					doctorID, totalDuration, req.StartTime, req.Date))
		}
	} else {
		doctor := FindAvailableDoctor(env.Doctors, env.ClinicDay, req.Date, req.StartTime,
			totalDuration, env.Appointments, req.ExcludeAppointmentID)
		if doctor == nil {
			return accepted, NewBookingError(RejectNoDoctorAvailable,
				fmt.Sprintf("no doctor is available at %s on %s", req.StartTime, req.Date))
		}
		doctorID = doctor.ID
	}

	accepted = AcceptedBooking{
		DoctorID:        doctorID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: totalDuration,
	}
	return accepted, nil
}

func findDoctor(doctors []models.Doctor, id string) *models.Doctor {
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i]
		}
	}
	return nil
}
