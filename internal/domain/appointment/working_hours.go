package appointment

import (
	"fmt"
	"time"

	"github.com/staysharp/booking-api/internal/models"
)

// Clock is a time of day in minutes after midnight.
type Clock int

func ParseClock(hm string) (Clock, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", hm, err)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// WorkingWindow is a barber's working hours for one day of the week.
type WorkingWindow struct {
	Start Clock
	End   Clock
}

func WindowFromModel(wh *models.WorkingHours) (*WorkingWindow, error) {
	if wh == nil {
		return nil, nil
	}

	start, err := ParseClock(wh.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(wh.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("working hours end %s is not after start %s", end, start)
	}

	return &WorkingWindow{Start: start, End: end}, nil
}

// Anchor pins the window to absolute instants on the calendar day of date,
// read in loc.
func (w WorkingWindow) Anchor(date time.Time, loc *time.Location) (time.Time, time.Time) {
	d := date.In(loc)
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

	return midnight.Add(time.Duration(w.Start) * time.Minute),
		midnight.Add(time.Duration(w.End) * time.Minute)
}

// Contains reports whether [start, end) lies fully inside the window on
// the day start falls on in loc.
func (w WorkingWindow) Contains(iv Interval, loc *time.Location) bool {
	workStart, workEnd := w.Anchor(iv.Start, loc)
	return !iv.Start.Before(workStart) && !iv.End.After(workEnd)
}
