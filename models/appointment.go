package models

import "time"

// Appointment statuses. Every status except cancelled occupies its slot.
const (
	StatusPending               = "pending"
	StatusConfirmed             = "confirmed"
	StatusCompleted             = "completed"
	StatusCancelled             = "cancelled"
	StatusCancellationRequested = "cancellation_requested"
)

// Patient kinds. Guest bookings carry the walk-in's name in GuestName instead
// of encoding it into the notes field.
const (
	PatientKindRegistered = "registered"
	PatientKindGuest      = "guest"
)

// Appointment represents a booked clinic visit. Date is "YYYY-MM-DD" and Time
// is "HH:MM"; DurationMinutes is resolved once at booking time from the
// requested services. Active mirrors the status (false only when cancelled)
// and backs the unique slot index in Mongo.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId,omitempty" json:"patientId,omitempty"`
	PatientKind     string    `bson:"patientKind" json:"patientKind"`
	GuestName       string    `bson:"guestName,omitempty" json:"guestName,omitempty"`
	DoctorID        string    `bson:"doctorId" json:"doctorId"`
	Date            string    `bson:"date" json:"date"`
	Time            string    `bson:"time" json:"time"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	ServiceIDs      []string  `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	PromoID         string    `bson:"promoId,omitempty" json:"promoId,omitempty"`
	Status          string    `bson:"status" json:"status"`
	Active          bool      `bson:"active" json:"active"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusCancellationRequested:
		return true
	}
	return false
}
