package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/staysharp/booking-api/internal/audit"
	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/dto"
	"github.com/staysharp/booking-api/internal/models"
	ucAppointment "github.com/staysharp/booking-api/internal/usecase/appointment"
)

type fakeCatalog struct {
	listLocations   func(ctx context.Context) ([]models.Location, error)
	listServices    func(ctx context.Context) ([]models.Service, error)
	listBarbers     func(ctx context.Context, locationID uint) ([]dto.BarberDTO, error)
	getWorkingHours func(ctx context.Context, barberID uint) ([]dto.WorkingDayDTO, error)
}

func (f *fakeCatalog) ListLocations(ctx context.Context) ([]models.Location, error) {
	return f.listLocations(ctx)
}

func (f *fakeCatalog) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.listServices(ctx)
}

func (f *fakeCatalog) ListBarbers(ctx context.Context, locationID uint) ([]dto.BarberDTO, error) {
	return f.listBarbers(ctx, locationID)
}

func (f *fakeCatalog) GetWorkingHours(ctx context.Context, barberID uint) ([]dto.WorkingDayDTO, error) {
	return f.getWorkingHours(ctx, barberID)
}

type availabilityFunc func(ctx context.Context, in domain.AvailabilityInput) (*domain.Availability, error)

func (f availabilityFunc) Execute(ctx context.Context, in domain.AvailabilityInput) (*domain.Availability, error) {
	return f(ctx, in)
}

type bookerFunc func(ctx context.Context, in ucAppointment.BookAppointmentInput) (*models.Appointment, error)

func (f bookerFunc) Execute(ctx context.Context, in ucAppointment.BookAppointmentInput) (*models.Appointment, error) {
	return f(ctx, in)
}

type listerFunc func(ctx context.Context, in ucAppointment.ListAppointmentsInput) ([]dto.AppointmentListDTO, error)

func (f listerFunc) Execute(ctx context.Context, in ucAppointment.ListAppointmentsInput) ([]dto.AppointmentListDTO, error) {
	return f(ctx, in)
}

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func init() {
	gin.SetMode(gin.TestMode)
}
