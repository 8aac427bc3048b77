package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinicbook/handlers"
)

// RegisterAppointmentRoutes sets up the endpoints for the booking engine.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.Booking.CreateAppointment)
		api.GET("", hb.Booking.ListAppointments)
		api.PUT("/:id", hb.Booking.RescheduleAppointment)
		api.PATCH("/:id/status", hb.Booking.UpdateAppointmentStatus)
	}
	r.GET("/api/slots", hb.Booking.AvailableSlots)
}

// RegisterDoctorRoutes registers doctor directory endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.Doctor.ListDoctors)
		api.POST("", hb.Doctor.CreateDoctor)
		api.PUT("/:id/schedule", hb.Doctor.UpdateSchedule)
		api.PATCH("/:id/availability", hb.Doctor.SetAvailability)
	}
}

// RegisterClinicRoutes registers the clinic operating-hours endpoints.
func RegisterClinicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clinic-schedule")
	{
		api.GET("", hb.Clinic.GetSchedule)
		api.PUT("/:day", hb.Clinic.UpdateDay)
	}
}

// RegisterCatalogRoutes registers the service and promotion catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.Catalog.ListServices)
	r.GET("/api/promotions", hb.Catalog.ListPromotions)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterClinicRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
