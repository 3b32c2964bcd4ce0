package appointment

import "time"

type AvailabilityInput struct {
	LocationID uint
	BarberID   uint
	ServiceID  uint
	Date       string // YYYY-MM-DD
}

type Availability struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps is the single definition of a booking conflict. Touching
// boundaries do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

func (i Interval) OverlapsAny(busy []Interval) bool {
	for _, b := range busy {
		if i.Overlaps(b) {
			return true
		}
	}
	return false
}

// ComputeSlots lists the start instants on date at which a service of the
// given duration fits inside window without overlapping booked. Candidates
// advance by step from the window start; a nil window means the barber does
// not work that day. The result is ascending and depends only on the inputs.
func ComputeSlots(
	window *WorkingWindow,
	duration time.Duration,
	booked []Interval,
	date time.Time,
	loc *time.Location,
	step time.Duration,
) []time.Time {

	slots := []time.Time{}
	if window == nil || duration <= 0 || step <= 0 {
		return slots
	}

	workStart, workEnd := window.Anchor(date, loc)

	for cur := workStart; !cur.Add(duration).After(workEnd); cur = cur.Add(step) {
		candidate := Interval{Start: cur, End: cur.Add(duration)}
		if candidate.OverlapsAny(booked) {
			continue
		}
		slots = append(slots, cur)
	}

	return slots
}
