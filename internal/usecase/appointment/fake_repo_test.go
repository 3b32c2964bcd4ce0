package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/models"
)

// memRepo is an in-memory store whose insert is atomic under mu.
type memRepo struct {
	mu sync.Mutex

	locations    map[uint]models.Location
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	workingHours map[uint]map[time.Weekday]models.WorkingHours
	appointments []models.Appointment

	// insertDelay widens the race window between check and insert.
	insertDelay time.Duration
}

var pacific = time.FixedZone("UTC-08:00", -8*3600)

func newMemRepo() *memRepo {
	r := &memRepo{
		locations: map[uint]models.Location{
			1: {ID: 1, Name: "Downtown", UTCOffset: "-08:00", Active: true},
			2: {ID: 2, Name: "Uptown", Active: true},
			3: {ID: 3, Name: "Harbor", UTCOffset: "PST", Active: true},
		},
		barbers: map[uint]models.Barber{
			10: {ID: 10, LocationID: 1, Name: "Sam", Active: true},
			11: {ID: 11, LocationID: 1, Name: "Alex", Active: true},
			20: {ID: 20, LocationID: 2, Name: "Jo", Active: true},
			30: {ID: 30, LocationID: 1, Name: "Retired", Active: false},
			40: {ID: 40, LocationID: 3, Name: "Kai", Active: true},
		},
		services: map[uint]models.Service{
			100: {ID: 100, Name: "Haircut", DurationMinutes: 30, PriceCents: 3500, Active: true},
			101: {ID: 101, Name: "Beard", DurationMinutes: 15, PriceCents: 1500, Active: true},
			102: {ID: 102, Name: "Old", DurationMinutes: 30, Active: false},
		},
		workingHours: map[uint]map[time.Weekday]models.WorkingHours{},
	}

	// Everyone works Tuesdays 09:00-17:00.
	for id := range r.barbers {
		r.workingHours[id] = map[time.Weekday]models.WorkingHours{
			time.Tuesday: {BarberID: id, DayOfWeek: int(time.Tuesday), StartTime: "09:00", EndTime: "17:00"},
		}
	}
	return r
}

func (r *memRepo) book(barberID uint, start, end time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, models.Appointment{
		ID:         uint(len(r.appointments) + 1),
		LocationID: r.barbers[barberID].LocationID,
		BarberID:   barberID,
		ServiceID:  100,
		StartTS:    start,
		EndTS:      end,
		Status:     string(domain.StatusBooked),
	})
}

func (r *memRepo) GetLocation(ctx context.Context, locationID uint) (*models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locations[locationID]
	if !ok || !l.Active {
		return nil, domain.ErrLocationNotFound
	}
	return &l, nil
}

func (r *memRepo) GetBarberForLocation(ctx context.Context, barberID, locationID uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.barberForLocation(barberID, locationID)
}

func (r *memRepo) barberForLocation(barberID, locationID uint) (*models.Barber, error) {
	b, ok := r.barbers[barberID]
	if !ok || !b.Active || b.LocationID != locationID {
		return nil, domain.ErrBarberNotFound
	}
	return &b, nil
}

func (r *memRepo) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[serviceID]
	if !ok || !s.Active {
		return nil, domain.ErrServiceNotFound
	}
	return &s, nil
}

func (r *memRepo) GetWorkingHours(ctx context.Context, barberID uint, weekday time.Weekday) (*models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wh, ok := r.workingHours[barberID][weekday]
	if !ok {
		return nil, nil
	}
	return &wh, nil
}

func (r *memRepo) ListBookedIntervals(ctx context.Context, barberID uint, from, to time.Time) ([]domain.Interval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookedOverlapping(barberID, domain.Interval{Start: from, End: to}), nil
}

func (r *memRepo) bookedOverlapping(barberID uint, window domain.Interval) []domain.Interval {
	var out []domain.Interval
	for _, ap := range r.appointments {
		iv := domain.Interval{Start: ap.StartTS, End: ap.EndTS}
		if ap.BarberID == barberID && ap.Status == string(domain.StatusBooked) && iv.Overlaps(window) {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func (r *memRepo) InsertAppointmentIfNoConflict(ctx context.Context, in domain.NewAppointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.barberForLocation(in.BarberID, in.LocationID); err != nil {
		return nil, err
	}

	candidate := domain.Interval{Start: in.Start, End: in.End}
	if candidate.OverlapsAny(r.bookedOverlapping(in.BarberID, candidate)) {
		return nil, domain.ErrSlotTaken
	}

	if r.insertDelay > 0 {
		time.Sleep(r.insertDelay)
	}

	ap := models.Appointment{
		ID:            uint(len(r.appointments) + 1),
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
	r.appointments = append(r.appointments, ap)
	return &ap, nil
}

func (r *memRepo) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.LocationID != 0 && ap.LocationID != filter.LocationID {
			continue
		}
		if filter.From != nil && ap.StartTS.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !ap.StartTS.Before(*filter.To) {
			continue
		}
		ap.Location = r.locations[ap.LocationID]
		ap.Barber = r.barbers[ap.BarberID]
		ap.Service = r.services[ap.ServiceID]
		out = append(out, ap)
	}
	return out, nil
}

var _ domain.Repository = (*memRepo)(nil)

// tuesday is 2026-03-10, a Tuesday, at hh:mm Pacific.
func tuesday(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, pacific)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testSettings() Settings {
	return Settings{
		DefaultLocation: pacific,
		SlotGranularity: 15 * time.Minute,
		Now:             fixedClock(time.Date(2026, 3, 1, 0, 0, 0, 0, pacific)),
	}
}
