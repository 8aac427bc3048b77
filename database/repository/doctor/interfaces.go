package doctorRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrNotFound is returned when no doctor matches the given id.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines persistence operations for the doctor directory.
// GetAll returns doctors in a stable creation order; auto-assignment picks
// the first available doctor from exactly that order.
type DoctorRepository interface {
	Create(ctx context.Context, doc *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	UpdateSchedule(ctx context.Context, id string, schedule models.WeeklySchedule) error
	EnsureIndexes() error
}
