package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/models"
	"github.com/staysharp/booking-api/internal/timezone"
	"github.com/staysharp/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	LocationID uint `validate:"required"`
	BarberID   uint `validate:"required"`
	ServiceID  uint `validate:"required"`

	// StartTS is an ISO-8601 instant with an explicit offset or Z.
	StartTS string `validate:"required,rfc3339"`

	CustomerName  string `validate:"required,max=100"`
	CustomerPhone string `validate:"omitempty,phone,max=30"`
	CustomerEmail string `validate:"omitempty,email,max=100"`
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	validate *validator.Validate
	locks    *barberLocks
	settings Settings
}

func NewBookAppointment(repo domain.Repository, settings Settings) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		validate: validators.New(),
		locks:    newBarberLocks(),
		settings: settings.withDefaults(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)

	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrMalformed
	}

	start, err := time.Parse(time.RFC3339, in.StartTS)
	if err != nil {
		return nil, domain.ErrMalformed
	}

	// --------------------------------------------------
	// 2. Barber at location
	// --------------------------------------------------
	if _, err := uc.repo.GetBarberForLocation(ctx, in.BarberID, in.LocationID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Service and end instant
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)
	slot := domain.Interval{Start: start, End: end}

	if uc.settings.EnforceBookingWindow {
		if err := uc.checkBookingWindow(ctx, in, slot); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 4. Conflict check + insert (one unit of work)
	// --------------------------------------------------
	release, err := uc.locks.acquire(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.Unavailable("store_unavailable", "The booking service is temporarily unavailable.", err)
	}
	defer release()

	return uc.repo.InsertAppointmentIfNoConflict(ctx, domain.NewAppointment{
		LocationID:    in.LocationID,
		BarberID:      in.BarberID,
		ServiceID:     in.ServiceID,
		Start:         start,
		End:           end,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
	})
}

// checkBookingWindow rejects slots that start before now or do not fit
// inside the barber's working hours on the slot's local weekday.
func (uc *BookAppointment) checkBookingWindow(
	ctx context.Context,
	in BookAppointmentInput,
	slot domain.Interval,
) error {
	if slot.Start.Before(uc.settings.Now()) {
		return domain.ErrStartInPast
	}

	location, err := uc.repo.GetLocation(ctx, in.LocationID)
	if err != nil {
		return err
	}
	loc, err := timezone.Location(location.UTCOffset, uc.settings.DefaultLocation)
	if err != nil {
		return fmt.Errorf("location %d: %w", location.ID, err)
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, slot.Start.In(loc).Weekday())
	if err != nil {
		return err
	}
	window, err := domain.WindowFromModel(wh)
	if err != nil {
		return err
	}
	if window == nil || !window.Contains(slot, loc) {
		return domain.ErrOutsideHours
	}
	return nil
}
