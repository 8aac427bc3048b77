package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinicRepo "clinicbook/database/repository/clinic"
	"clinicbook/models"
	"clinicbook/services/scheduling"
	"clinicbook/utils"
)

// ClinicHandler exposes the clinic operating-hours endpoints.
type ClinicHandler struct {
	Repo clinicRepo.ClinicScheduleRepository
}

func NewClinicHandler(repo clinicRepo.ClinicScheduleRepository) *ClinicHandler {
	return &ClinicHandler{Repo: repo}
}

// GetSchedule returns the clinic's whole week in weekday order.
func (h *ClinicHandler) GetSchedule(c *gin.Context) {
	week, err := h.Repo.GetWeek(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load clinic schedule", err.Error())
		return
	}

	ordered := make([]models.DayWindow, 0, len(models.WeekdayNames))
	for _, day := range models.WeekdayNames {
		if window, ok := week[day]; ok {
			ordered = append(ordered, window)
		}
	}
	c.JSON(http.StatusOK, ordered)
}

// UpdateDay writes the operating window for one weekday.
func (h *ClinicHandler) UpdateDay(c *gin.Context) {
	day := c.Param("day")
	if !validWeekday(day) {
		utils.JSONError(c, http.StatusBadRequest, "invalid weekday", day)
		return
	}

	var window models.DayWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	window.Day = day
	if err := scheduling.ValidateDayWindow(window); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid day window", err.Error())
		return
	}

	if err := h.Repo.UpsertDay(c.Request.Context(), window); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update clinic schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, window)
}
