package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/scheduling"
	"clinicbook/utils"
)

// DoctorHandler exposes the doctor directory endpoints.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

// ListDoctors returns the directory in its stable scan order.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor adds a practitioner to the directory.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Specialty string `json:"specialty"`
		Available *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}
	doc := &models.Doctor{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Specialty: input.Specialty,
		Available: available,
		Schedule:  models.WeeklySchedule{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.Repo.Create(c.Request.Context(), doc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UpdateSchedule replaces a doctor's weekly schedule after validating each
// day window.
func (h *DoctorHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	var schedule models.WeeklySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	for day, window := range schedule {
		if !validWeekday(day) {
			utils.JSONError(c, http.StatusBadRequest, "invalid weekday", day)
			return
		}
		window.Day = day
		if err := scheduling.ValidateDayWindow(window); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid day window", err.Error())
			return
		}
		schedule[day] = window
	}

	if err := h.Repo.UpdateSchedule(c.Request.Context(), id, schedule); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "schedule": schedule})
}

// SetAvailability flips the administrative booking flag.
func (h *DoctorHandler) SetAvailability(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Repo.SetAvailability(c.Request.Context(), id, *input.Available); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "available": *input.Available})
}

func validWeekday(day string) bool {
	for _, name := range models.WeekdayNames {
		if name == day {
			return true
		}
	}
	return false
}
