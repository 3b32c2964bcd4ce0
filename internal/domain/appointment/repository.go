package appointment

import (
	"context"
	"time"

	"github.com/staysharp/booking-api/internal/models"
)

// NewAppointment is everything the store needs to claim a slot.
type NewAppointment struct {
	LocationID    uint
	BarberID      uint
	ServiceID     uint
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

type Repository interface {
	// -------- Reference data --------
	GetLocation(
		ctx context.Context,
		locationID uint,
	) (*models.Location, error)

	// GetBarberForLocation returns the active barber only when it belongs to
	// locationID; otherwise ErrBarberNotFound.
	GetBarberForLocation(
		ctx context.Context,
		barberID uint,
		locationID uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability --------

	// GetWorkingHours returns nil, nil when the barber does not work on weekday.
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday time.Weekday,
	) (*models.WorkingHours, error)

	// ListBookedIntervals returns booked intervals of the barber that overlap
	// [from, to), ordered by start.
	ListBookedIntervals(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]Interval, error)

	// -------- Booking --------

	// InsertAppointmentIfNoConflict runs the conflict check and the insert as
	// one unit of work. It returns ErrSlotTaken when a booked appointment of
	// the same barber overlaps [Start, End).
	InsertAppointmentIfNoConflict(
		ctx context.Context,
		in NewAppointment,
	) (*models.Appointment, error)

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}

type ListFilter struct {
	LocationID uint
	From       *time.Time
	To         *time.Time
	Limit      int
}
