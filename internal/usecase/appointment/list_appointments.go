package appointment

import (
	"context"
	"fmt"

	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/dto"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/timezone"
)

type ListAppointmentsInput struct {
	LocationID uint
	Date       string // optional YYYY-MM-DD
	Limit      int
}

type ListAppointments struct {
	repo     domain.Repository
	settings Settings
}

func NewListAppointments(repo domain.Repository, settings Settings) *ListAppointments {
	return &ListAppointments{repo: repo, settings: settings.withDefaults()}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	filter := domain.ListFilter{LocationID: in.LocationID, Limit: in.Limit}

	if in.Date != "" {
		loc := uc.settings.DefaultLocation
		if in.LocationID != 0 {
			location, err := uc.repo.GetLocation(ctx, in.LocationID)
			if err != nil {
				return nil, err
			}
			loc, err = timezone.Location(location.UTCOffset, loc)
			if err != nil {
				return nil, fmt.Errorf("location %d: %w", location.ID, err)
			}
		}

		date, err := timezone.ParseDate(in.Date, loc)
		if err != nil {
			return nil, httperr.Validation("invalid_date", "date must be YYYY-MM-DD")
		}
		from, to := timezone.DayBounds(date, loc)
		filter.From = &from
		filter.To = &to
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			StartTS:       ap.StartTS,
			EndTS:         ap.EndTS,
			Status:        ap.Status,
			CustomerName:  ap.CustomerName,
			CustomerPhone: ap.CustomerPhone,
			CustomerEmail: ap.CustomerEmail,
			LocationName:  ap.Location.Name,
			ServiceName:   ap.Service.Name,
			BarberName:    ap.Barber.Name,
		})
	}

	return out, nil
}
