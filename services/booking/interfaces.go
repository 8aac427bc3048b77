package booking

import (
	"context"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
)

// CreateAppointmentInput is the payload for a new booking attempt. An empty
// DoctorID requests auto-assignment.
type CreateAppointmentInput struct {
	PatientID   string   `json:"patientId"`
	PatientKind string   `json:"patientKind"`
	GuestName   string   `json:"guestName"`
	DoctorID    string   `json:"doctorId"`
	Date        string   `json:"date"`
	StartTime   string   `json:"startTime"`
	ServiceIDs  []string `json:"serviceIds"`
	PromoID     string   `json:"promoId"`
	Notes       string   `json:"notes"`
}

// RescheduleInput moves an existing appointment; empty fields keep the
// current value.
type RescheduleInput struct {
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// SlotsQuery asks for the bookable start times of one doctor on one date,
// sized for the requested services.
type SlotsQuery struct {
	DoctorID   string
	Date       string
	ServiceIDs []string
	PromoID    string
}

// BookingService coordinates booking validation and persistence. All
// scheduling decisions happen in the scheduling package; this service only
// gathers collaborator data, runs the validator and persists the outcome.
type BookingService interface {
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id string, input RescheduleInput) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f appointmentRepo.Filter) ([]models.Appointment, error)
	AvailableSlots(ctx context.Context, q SlotsQuery) ([]string, error)
}
