package appointmentRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrSlotTaken is returned when the unique (doctor, date, time) index refuses
// an insert or update: another writer won the slot between our validation
// read and the write.
var ErrSlotTaken = errors.New("appointment slot already taken")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// Filter narrows appointment listings. Availability checks always narrow by
// date; listing every appointment ever is a caller bug.
type Filter struct {
	DoctorID  string
	PatientID string
	Date      string
	Status    string
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, apt *models.Appointment) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
	// ListByDate returns every appointment on the given date regardless of
	// doctor, for auto-assignment scans.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	EnsureIndexes() error
}
