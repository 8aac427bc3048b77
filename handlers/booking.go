package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appointmentRepo "clinicbook/database/repository/appointment"
	catalogRepo "clinicbook/database/repository/catalog"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/services/booking"
	"clinicbook/services/scheduling"
	"clinicbook/utils"
)

// BookingHandler exposes the appointment booking endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateAppointment validates and persists a new booking.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var input booking.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !scheduling.ValidTimeOfDay(input.StartTime) {
		utils.JSONError(c, http.StatusBadRequest, "invalid start time", "startTime must be zero-padded HH:MM")
		return
	}

	apt, err := h.Svc.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, apt)
}

// RescheduleAppointment re-validates an existing appointment against a new
// slot and persists the move.
func (h *BookingHandler) RescheduleAppointment(c *gin.Context) {
	id := c.Param("id")
	var input booking.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.StartTime != "" && !scheduling.ValidTimeOfDay(input.StartTime) {
		utils.JSONError(c, http.StatusBadRequest, "invalid start time", "startTime must be zero-padded HH:MM")
		return
	}

	apt, err := h.Svc.RescheduleAppointment(c.Request.Context(), id, input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle
// (confirm, complete, cancel, request cancellation).
func (h *BookingHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	apt, err := h.Svc.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

// ListAppointments returns appointments narrowed by the query parameters.
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	filter := appointmentRepo.Filter{
		DoctorID:  c.Query("doctor_id"),
		PatientID: c.Query("patient_id"),
		Date:      c.Query("date"),
		Status:    c.Query("status"),
	}

	appointments, err := h.Svc.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// AvailableSlots returns the bookable start times for a doctor on a date.
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	q := booking.SlotsQuery{
		DoctorID: c.Query("doctor_id"),
		Date:     c.Query("date"),
		PromoID:  c.Query("promo_id"),
	}
	if ids := c.Query("service_ids"); ids != "" {
		q.ServiceIDs = strings.Split(ids, ",")
	}
	if q.DoctorID == "" || q.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "doctor_id and date are required")
		return
	}

	slots, err := h.Svc.AvailableSlots(c.Request.Context(), q)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": q.Date, "doctorId": q.DoctorID, "slots": slots})
}

// respondBookingError maps service errors to HTTP statuses: typed rejections
// become 422 (or 409 for the lost-race slot conflict), missing entities 404,
// bad references 400, everything else 500.
func respondBookingError(c *gin.Context, err error) {
	if code, ok := scheduling.RejectionOf(err); ok {
		status := http.StatusUnprocessableEntity
		if code == scheduling.RejectSlotTaken {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error(), "code": code})
		return
	}

	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound), errors.Is(err, doctorRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, catalogRepo.ErrNotFound):
		utils.JSONError(c, http.StatusBadRequest, "unknown catalog reference", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
