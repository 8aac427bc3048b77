package scheduling

import (
	"errors"
	"fmt"
)

// RejectionCode identifies why a booking attempt was refused.
type RejectionCode string

const (
	RejectDurationUnresolved RejectionCode = "DurationUnresolved"
	RejectDateInPast         RejectionCode = "DateInPast"
	RejectTooFarAhead        RejectionCode = "BookingTooFarAhead"
	RejectClinicClosed       RejectionCode = "ClinicClosed"
	RejectDoctorUnavailable  RejectionCode = "DoctorUnavailable"
	RejectNoDoctorAvailable  RejectionCode = "NoDoctorAvailable"
	RejectBreakTimeConflict  RejectionCode = "BreakTimeConflict"

	// RejectSlotTaken is raised by the persistence layer when two writers pass
	// validation for the same slot and the unique index refuses the second.
	RejectSlotTaken RejectionCode = "SlotTaken"
)

// BookingError is a typed rejection returned to the caller; the surrounding
// CRUD layer decides the user-facing phrasing per code.
type BookingError struct {
	Code    RejectionCode
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code RejectionCode, msg string) error {
	return &BookingError{Code: code, Message: msg}
}

// RejectionOf extracts the rejection code from an error chain.
func RejectionOf(err error) (RejectionCode, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
