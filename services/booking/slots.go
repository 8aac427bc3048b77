package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	clinicRepo "clinicbook/database/repository/clinic"
	"clinicbook/models"
	"clinicbook/services/scheduling"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// AvailableSlots returns the bookable start times for one doctor on one
// date, sized for the requested services. Results are cached briefly in
// Redis per (doctor, date, duration); any appointment write for that doctor
// and date invalidates the cache, so the TTL only bounds staleness from
// out-of-band edits.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, q SlotsQuery) ([]string, error) {
	logger := utils.GetLogger()

	refs, err := s.resolveServiceRefs(ctx, q.ServiceIDs, q.PromoID)
	if err != nil {
		return nil, err
	}
	duration := scheduling.ResolveTotalDurationWith(refs, s.DefaultDurationMinutes)
	if duration <= 0 {
		return nil, scheduling.NewBookingError(scheduling.RejectDurationUnresolved,
			"could not determine a positive total duration for the requested services")
	}

	cacheKey := fmt.Sprintf("slots:%s:%s:%d", q.DoctorID, q.Date, duration)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var slots []string
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
		}
	}

	weekday, err := scheduling.WeekdayName(q.Date)
	if err != nil {
		return nil, err
	}

	clinicDay, err := s.Clinic.GetDay(ctx, weekday)
	if errors.Is(err, clinicRepo.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !clinicDay.IsOpen {
		return []string{}, nil
	}

	doctor, err := s.Doctors.GetByID(ctx, q.DoctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.Available {
		return []string{}, nil
	}
	doctorDay, ok := doctor.Schedule[weekday]
	if !ok {
		return []string{}, nil
	}

	appointments, err := s.Appointments.List(ctx, appointmentRepo.Filter{
		DoctorID: q.DoctorID,
		Date:     q.Date,
	})
	if err != nil {
		return nil, err
	}

	slots := s.buildDaySlots(*clinicDay, doctorDay, q.DoctorID, q.Date, duration, appointments)

	if s.Cache != nil {
		ttl := s.SlotCacheTTL
		if ttl <= 0 {
			ttl = time.Minute
		}
		payload, err := json.Marshal(slots)
		if err == nil {
			if err := s.Cache.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				logger.Warn("failed to cache slot listing",
					zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return slots, nil
}

// buildDaySlots walks the scheduling grid over the clinic/doctor window
// intersection and keeps the starts that pass the availability check.
func (s *DefaultBookingService) buildDaySlots(
	clinicDay models.DayWindow,
	doctorDay models.DayWindow,
	doctorID, date string,
	duration int,
	appointments []models.Appointment,
) []string {
	windowStart := clinicDay.StartTime
	if doctorDay.StartTime > windowStart {
		windowStart = doctorDay.StartTime
	}
	windowEnd := clinicDay.EndTime
	if doctorDay.EndTime < windowEnd {
		windowEnd = doctorDay.EndTime
	}

	slots := []string{}
	for _, start := range scheduling.GenerateSlots(windowStart, windowEnd, s.GranularityMinutes) {
		if scheduling.IsSlotAvailable(scheduling.SlotQuery{
			DoctorID:        doctorID,
			Date:            date,
			StartTime:       start,
			DurationMinutes: duration,
			ClinicDay:       clinicDay,
			DoctorDay:       &doctorDay,
			Appointments:    appointments,
		}) {
			slots = append(slots, start)
		}
	}
	return slots
}

// invalidateSlotCache drops every cached slot listing for the doctor/date,
// whatever duration it was computed for.
func (s *DefaultBookingService) invalidateSlotCache(ctx context.Context, doctorID, date string) {
	if s.Cache == nil {
		return
	}
	logger := utils.GetLogger()

	pattern := fmt.Sprintf("slots:%s:%s:*", doctorID, date)
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Warn("failed to scan slot cache keys", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("failed to invalidate slot cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
