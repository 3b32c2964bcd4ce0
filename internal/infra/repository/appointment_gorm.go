package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/models"
)

// overlapWhere selects rows whose [start_ts, end_ts) may intersect [?, ?).
// Arguments are (end, start). It only narrows the candidate rows; the
// decision is always domain.Interval.Overlaps.
const overlapWhere = "barber_id = ? AND status = ? AND start_ts < ? AND end_ts > ?"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetLocation(
	ctx context.Context,
	locationID uint,
) (*models.Location, error) {

	var loc models.Location
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", locationID, true).
		First(&loc).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrLocationNotFound)
	}
	return &loc, nil
}

func (r *AppointmentGormRepository) GetBarberForLocation(
	ctx context.Context,
	barberID uint,
	locationID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND location_id = ? AND active = ?", barberID, locationID, true).
		First(&barber).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrBarberNotFound)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", serviceID, true).
		First(&service).Error; err != nil {
		return nil, notFoundOr(err, domain.ErrServiceNotFound)
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday time.Weekday,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, int(weekday)).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) ListBookedIntervals(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]domain.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_ts", "end_ts").
		Where(overlapWhere, barberID, string(domain.StatusBooked), to, from).
		Order("start_ts ASC").
		Find(&apps).Error; err != nil {
		return nil, classify(err)
	}

	return toIntervals(apps), nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// InsertAppointmentIfNoConflict locks the barber row for the duration of
// the transaction, so concurrent bookings for one barber serialize on it
// while other barbers proceed in parallel. The appointments_no_overlap
// exclusion constraint backs this up across any writer; its violation is
// reported as the same conflict.
func (r *AppointmentGormRepository) InsertAppointmentIfNoConflict(
	ctx context.Context,
	in domain.NewAppointment,
) (*models.Appointment, error) {

	var created models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var barber models.Barber
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND location_id = ? AND active = ?", in.BarberID, in.LocationID, true).
			First(&barber).Error; err != nil {
			return notFoundOr(err, domain.ErrBarberNotFound)
		}

		var service models.Service
		if err := tx.
			Where("id = ? AND active = ?", in.ServiceID, true).
			First(&service).Error; err != nil {
			return notFoundOr(err, domain.ErrServiceNotFound)
		}

		var existing []models.Appointment
		if err := tx.
			Select("start_ts", "end_ts").
			Where(overlapWhere, in.BarberID, string(domain.StatusBooked), in.End, in.Start).
			Find(&existing).Error; err != nil {
			return err
		}

		candidate := domain.Interval{Start: in.Start, End: in.End}
		if candidate.OverlapsAny(toIntervals(existing)) {
			return domain.ErrSlotTaken
		}

		ap := models.Appointment{
			LocationID:    in.LocationID,
			BarberID:      in.BarberID,
			ServiceID:     in.ServiceID,
			StartTS:       in.Start,
			EndTS:         in.End,
			Status:        string(domain.InitialStatus()),
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			CustomerEmail: in.CustomerEmail,
		}

		if err := tx.Create(&ap).Error; err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, classify(err)
	}

	return &created, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 200
	}

	q := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Barber").
		Preload("Service")

	if filter.LocationID != 0 {
		q = q.Where("location_id = ?", filter.LocationID)
	}
	if filter.From != nil {
		q = q.Where("start_ts >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_ts < ?", *filter.To)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_ts DESC").
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, classify(err)
	}

	return apps, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func toIntervals(apps []models.Appointment) []domain.Interval {
	out := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, domain.Interval{Start: ap.StartTS, End: ap.EndTS})
	}
	return out
}

func notFoundOr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// classify maps store failures onto the error taxonomy. Errors that are
// already classified pass through.
func classify(err error) error {
	var classified *httperr.Error
	switch {
	case errors.As(err, &classified):
		return err
	case httperr.IsExclusionConflict(err):
		return domain.ErrSlotTaken
	case httperr.IsStoreUnavailable(err):
		return httperr.Unavailable("store_unavailable", "The booking service is temporarily unavailable.", err)
	default:
		return fmt.Errorf("store: %w", err)
	}
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
