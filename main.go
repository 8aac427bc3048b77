package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/database"
	appointmentRepo "clinicbook/database/repository/appointment"
	catalogRepo "clinicbook/database/repository/catalog"
	clinicRepo "clinicbook/database/repository/clinic"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/booking"
	"clinicbook/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	appointments := appointmentRepo.NewMongoAppointmentRepo()
	doctors := doctorRepo.NewMongoDoctorRepo()
	clinic := clinicRepo.NewMongoClinicRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()

	if err := appointments.EnsureIndexes(); err != nil {
		logger.Fatal("Failed to ensure appointment indexes", zap.Error(err))
	}
	if err := doctors.EnsureIndexes(); err != nil {
		logger.Fatal("Failed to ensure doctor indexes", zap.Error(err))
	}

	bookingSvc := &booking.DefaultBookingService{
		Appointments:       appointments,
		Doctors:            doctors,
		Clinic:             clinic,
		Catalog:            catalog,
		Cache:              utils.GetCacheClient(),
		HorizonDays:            config.AppConfig.BookingHorizonDays,
		GranularityMinutes:     config.AppConfig.SlotGranularityMinutes,
		DefaultDurationMinutes: config.AppConfig.DefaultServiceDuration,
		SlotCacheTTL:           time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second,
	}

	hb := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingSvc),
		Doctor:  handlers.NewDoctorHandler(doctors),
		Clinic:  handlers.NewClinicHandler(clinic),
		Catalog: handlers.NewCatalogHandler(catalog),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), utils.ErrorHandler(), middleware.RateLimitMiddleware())
	routes.RegisterRoutes(router, hb)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
