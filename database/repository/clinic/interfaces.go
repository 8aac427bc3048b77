package clinicRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrNotFound is returned when no schedule exists for the requested weekday.
var ErrNotFound = errors.New("clinic schedule for day not found")

// ClinicScheduleRepository stores the clinic's operating hours, one document
// per weekday.
type ClinicScheduleRepository interface {
	GetDay(ctx context.Context, day string) (*models.DayWindow, error)
	GetWeek(ctx context.Context) (models.WeeklySchedule, error)
	UpsertDay(ctx context.Context, window models.DayWindow) error
}
