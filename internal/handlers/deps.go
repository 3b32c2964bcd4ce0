package handlers

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/staysharp/booking-api/internal/audit"
	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/dto"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/middleware"
	"github.com/staysharp/booking-api/internal/models"
	ucAppointment "github.com/staysharp/booking-api/internal/usecase/appointment"
)

type CatalogReader interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListBarbers(ctx context.Context, locationID uint) ([]dto.BarberDTO, error)
	GetWorkingHours(ctx context.Context, barberID uint) ([]dto.WorkingDayDTO, error)
}

type AvailabilityFinder interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) (*domain.Availability, error)
}

type AppointmentBooker interface {
	Execute(ctx context.Context, in ucAppointment.BookAppointmentInput) (*models.Appointment, error)
}

type AppointmentLister interface {
	Execute(ctx context.Context, in ucAppointment.ListAppointmentsInput) ([]dto.AppointmentListDTO, error)
}

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// respondError writes err and logs the cause of server-side failures.
func respondError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	if status := httperr.StatusFor(err); status >= 500 {
		logger.Error(msg,
			"request_id", middleware.GetRequestID(c),
			"kind", httperr.KindOf(err).String(),
			"err", err,
		)
	}
	httperr.Respond(c, err)
}

// parseID reads an optional unsigned id; empty gives 0.
func parseID(raw string) (uint, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
