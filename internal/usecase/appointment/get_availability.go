package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	settings Settings
}

func NewGetAvailability(repo domain.Repository, settings Settings) *GetAvailability {
	return &GetAvailability{repo: repo, settings: settings.withDefaults()}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if in.LocationID == 0 || in.BarberID == 0 || in.ServiceID == 0 || in.Date == "" {
		return nil, domain.ErrMalformed
	}

	location, err := uc.repo.GetLocation(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetBarberForLocation(ctx, in.BarberID, in.LocationID); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	loc, err := timezone.Location(location.UTCOffset, uc.settings.DefaultLocation)
	if err != nil {
		return nil, fmt.Errorf("location %d: %w", location.ID, err)
	}

	date, err := timezone.ParseDate(in.Date, loc)
	if err != nil {
		return nil, httperr.Validation("invalid_date", "date must be YYYY-MM-DD")
	}

	out := &domain.Availability{Date: in.Date, Slots: []time.Time{}}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, date.Weekday())
	if err != nil {
		return nil, err
	}
	window, err := domain.WindowFromModel(wh)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return out, nil
	}

	workStart, workEnd := window.Anchor(date, loc)

	booked, err := uc.repo.ListBookedIntervals(ctx, in.BarberID, workStart, workEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.ComputeSlots(
		window,
		time.Duration(service.DurationMinutes)*time.Minute,
		booked,
		date,
		loc,
		uc.settings.SlotGranularity,
	)

	now := uc.settings.Now()
	for _, s := range slots {
		if s.Before(now) {
			continue
		}
		out.Slots = append(out.Slots, s)
	}

	return out, nil
}
