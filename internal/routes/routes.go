package routes

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staysharp/booking-api/internal/config"
	dbpkg "github.com/staysharp/booking-api/internal/db"
	"github.com/staysharp/booking-api/internal/handlers"
	infraRepo "github.com/staysharp/booking-api/internal/infra/repository"
	"github.com/staysharp/booking-api/internal/middleware"
	"github.com/staysharp/booking-api/internal/timezone"
	ucAppointment "github.com/staysharp/booking-api/internal/usecase/appointment"
	"github.com/staysharp/booking-api/internal/usecase/catalog"
)

// Deps are the process-wide singletons built in main. Cache and Photos
// may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
	Cache  catalog.Cache
	Photos catalog.PhotoURLs
	Audit  handlers.AuditDispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) error {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORSMiddleware(d.Config.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)

	defaultLoc, err := timezone.ParseOffset(d.Config.DefaultUTCOffset)
	if err != nil {
		return err
	}

	settings := ucAppointment.Settings{
		DefaultLocation:      defaultLoc,
		SlotGranularity:      d.Config.SlotGranularity(),
		EnforceBookingWindow: d.Config.EnforceBookingWindow,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, settings)
	bookAppointmentUC := ucAppointment.NewBookAppointment(appointmentRepo, settings)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, settings)

	catalogUC := catalog.New(catalogRepo, d.Cache, d.Photos)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		catalogUC,
		getAvailabilityUC,
		bookAppointmentUC,
		d.Audit,
		d.Logger,
	)
	adminHandler := handlers.NewAdminHandler(listAppointmentsUC, d.Logger)
	healthHandler := handlers.NewHealthHandler(
		func(ctx context.Context) error { return dbpkg.Ping(ctx, d.DB) },
		d.Logger,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/db-health", healthHandler.DBHealth)

	api := r.Group("/api")
	{
		api.GET("/locations", publicHandler.ListLocations)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/barbers/:id/working-hours", publicHandler.GetWorkingHours)

		api.GET("/availability", publicHandler.Availability)
		api.POST("/appointments", publicHandler.CreateAppointment)

		admin := api.Group("/admin")
		{
			admin.GET("/appointments", adminHandler.ListAppointments)
		}
	}

	return nil
}
