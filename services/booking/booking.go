package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	catalogRepo "clinicbook/database/repository/catalog"
	clinicRepo "clinicbook/database/repository/clinic"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/scheduling"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Clinic       clinicRepo.ClinicScheduleRepository
	Catalog      catalogRepo.CatalogRepository
	Cache        *redis.Client // optional; nil disables slot caching

	HorizonDays            int
	GranularityMinutes     int
	DefaultDurationMinutes int
	SlotCacheTTL           time.Duration
}

func (s *DefaultBookingService) validatorConfig() scheduling.ValidatorConfig {
	return scheduling.ValidatorConfig{
		HorizonDays:            s.HorizonDays,
		DefaultDurationMinutes: s.DefaultDurationMinutes,
	}
}

// CreateAppointment validates a booking request against a fresh read of the
// day's appointments and persists it. The unique slot index is the final
// arbiter when two writers pass validation concurrently; the loser gets a
// SlotTaken rejection and should be told the slot just became unavailable.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	refs, err := s.resolveServiceRefs(ctx, input.ServiceIDs, input.PromoID)
	if err != nil {
		return nil, err
	}

	env, err := s.scheduleContext(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	accepted, err := scheduling.ValidateBooking(scheduling.BookingRequest{
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		StartTime: input.StartTime,
		Services:  refs,
	}, env, s.validatorConfig())
	if err != nil {
		return nil, err
	}

	patientKind := input.PatientKind
	if patientKind == "" {
		patientKind = models.PatientKindRegistered
	}

	now := time.Now()
	apt := &models.Appointment{
		ID:              uuid.New().String(),
		PatientID:       input.PatientID,
		PatientKind:     patientKind,
		GuestName:       input.GuestName,
		DoctorID:        accepted.DoctorID,
		Date:            accepted.Date,
		Time:            accepted.StartTime,
		DurationMinutes: accepted.DurationMinutes,
		ServiceIDs:      input.ServiceIDs,
		PromoID:         input.PromoID,
		Status:          models.StatusPending,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Appointments.Create(ctx, apt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, scheduling.NewBookingError(scheduling.RejectSlotTaken,
				"the slot just became unavailable, please pick another time")
		}
		return nil, err
	}

	logger.Info("appointment created",
		zap.String("appointmentID", apt.ID),
		zap.String("doctorID", apt.DoctorID),
		zap.String("date", apt.Date),
		zap.String("time", apt.Time))

	s.invalidateSlotCache(ctx, apt.DoctorID, apt.Date)
	return apt, nil
}

// RescheduleAppointment re-validates an existing appointment against a new
// doctor/date/time, excluding the appointment itself from overlap checks.
func (s *DefaultBookingService) RescheduleAppointment(ctx context.Context, id string, input RescheduleInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	apt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if apt.Status == models.StatusCancelled {
		return nil, fmt.Errorf("appointment %s is cancelled and cannot be rescheduled", id)
	}

	doctorID := input.DoctorID
	if doctorID == "" {
		doctorID = apt.DoctorID
	}
	date := input.Date
	if date == "" {
		date = apt.Date
	}
	startTime := input.StartTime
	if startTime == "" {
		startTime = apt.Time
	}

	refs, err := s.resolveServiceRefs(ctx, apt.ServiceIDs, apt.PromoID)
	if err != nil {
		return nil, err
	}

	env, err := s.scheduleContext(ctx, date)
	if err != nil {
		return nil, err
	}

	accepted, err := scheduling.ValidateBooking(scheduling.BookingRequest{
		DoctorID:             doctorID,
		Date:                 date,
		StartTime:            startTime,
		Services:             refs,
		ExcludeAppointmentID: id,
	}, env, s.validatorConfig())
	if err != nil {
		return nil, err
	}

	oldDoctorID, oldDate := apt.DoctorID, apt.Date
	apt.DoctorID = accepted.DoctorID
	apt.Date = accepted.Date
	apt.Time = accepted.StartTime
	apt.DurationMinutes = accepted.DurationMinutes

	if err := s.Appointments.Update(ctx, apt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, scheduling.NewBookingError(scheduling.RejectSlotTaken,
				"the slot just became unavailable, please pick another time")
		}
		return nil, err
	}

	logger.Info("appointment rescheduled",
		zap.String("appointmentID", apt.ID),
		zap.String("doctorID", apt.DoctorID),
		zap.String("date", apt.Date),
		zap.String("time", apt.Time))

	s.invalidateSlotCache(ctx, oldDoctorID, oldDate)
	s.invalidateSlotCache(ctx, apt.DoctorID, apt.Date)
	return apt, nil
}

// UpdateStatus moves an appointment through its lifecycle. Cancelling frees
// the slot immediately for other bookings; reactivating a cancelled
// appointment re-validates the slot first, since it may have been rebooked in
// the meantime.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid appointment status %q", status)
	}

	apt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if apt.Status == models.StatusCancelled && status != models.StatusCancelled {
		env, err := s.scheduleContext(ctx, apt.Date)
		if err != nil {
			return nil, err
		}
		if _, err := scheduling.ValidateBooking(scheduling.BookingRequest{
			DoctorID:             apt.DoctorID,
			Date:                 apt.Date,
			StartTime:            apt.Time,
			Services:             []scheduling.ServiceRef{{DurationMinutes: apt.DurationMinutes}},
			ExcludeAppointmentID: apt.ID,
		}, env, s.validatorConfig()); err != nil {
			return nil, err
		}
	}

	if err := s.Appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	apt.Status = status
	apt.Active = status != models.StatusCancelled

	s.invalidateSlotCache(ctx, apt.DoctorID, apt.Date)
	return apt, nil
}

// ListAppointments proxies the repository listing.
func (s *DefaultBookingService) ListAppointments(ctx context.Context, f appointmentRepo.Filter) ([]models.Appointment, error) {
	return s.Appointments.List(ctx, f)
}

// resolveServiceRefs maps catalog ids to duration-bearing service refs. A
// promotion contributes a bundle override ref in front of the service refs.
func (s *DefaultBookingService) resolveServiceRefs(ctx context.Context, serviceIDs []string, promoID string) ([]scheduling.ServiceRef, error) {
	var refs []scheduling.ServiceRef

	if promoID != "" {
		promo, err := s.Catalog.GetPromotionByID(ctx, promoID)
		if err != nil {
			return nil, fmt.Errorf("unknown promotion %s: %w", promoID, err)
		}
		if !promo.Active {
			return nil, fmt.Errorf("promotion %s is no longer active", promoID)
		}
		refs = append(refs, scheduling.ServiceRef{
			ID:              promo.ID,
			Name:            promo.Title,
			DurationMinutes: promo.DurationMinutes,
			BundleOverride:  true,
		})
	}

	for _, id := range serviceIDs {
		svc, err := s.Catalog.GetServiceByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("unknown service %s: %w", id, err)
		}
		refs = append(refs, scheduling.ServiceRef{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			DurationText:    svc.Duration,
		})
	}

	return refs, nil
}

// scheduleContext gathers the read-only inputs one validation needs. It is
// called fresh per attempt; nothing here is cached, so an edit made between
// two attempts is always observed.
func (s *DefaultBookingService) scheduleContext(ctx context.Context, date string) (scheduling.ScheduleContext, error) {
	var env scheduling.ScheduleContext

	weekday, err := scheduling.WeekdayName(date)
	if err != nil {
		return env, err
	}

	clinicDay, err := s.Clinic.GetDay(ctx, weekday)
	if errors.Is(err, clinicRepo.ErrNotFound) {
		// No configured hours means closed.
		clinicDay = &models.DayWindow{Day: weekday, IsOpen: false}
	} else if err != nil {
		return env, err
	}

	doctors, err := s.Doctors.GetAll(ctx)
	if err != nil {
		return env, err
	}

	appointments, err := s.Appointments.ListByDate(ctx, date)
	if err != nil {
		return env, err
	}

	env.ClinicDay = *clinicDay
	env.Doctors = doctors
	env.Appointments = appointments
	return env, nil
}
