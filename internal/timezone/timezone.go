package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Working hours are stored as local civil time. They are anchored to
// absolute instants with a fixed UTC offset, configured globally and
// optionally overridden per location. No tz database is consulted, so
// daylight-saving transitions are not followed.

const DefaultOffset = "-08:00"

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// ParseOffset turns "+HH:MM" / "-HH:MM" (or "Z") into a fixed zone.
func ParseOffset(s string) (*time.Location, error) {
	if s == "Z" || s == "+00:00" || s == "-00:00" {
		return time.FixedZone("UTC", 0), nil
	}

	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("invalid utc offset %q, want +HH:MM or -HH:MM", s)
	}

	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	if hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("utc offset %q out of range", s)
	}

	seconds := hours*3600 + minutes*60
	if m[1] == "-" {
		seconds = -seconds
	}

	return time.FixedZone("UTC"+s, seconds), nil
}

// Default is the built-in DefaultOffset zone.
func Default() *time.Location {
	loc, _ := ParseOffset(DefaultOffset)
	return loc
}

// Location resolves a location's own offset, falling back to def and then
// Default when the location has none. A malformed offset is an error.
func Location(locationOffset string, def *time.Location) (*time.Location, error) {
	if locationOffset != "" {
		loc, err := ParseOffset(locationOffset)
		if err != nil {
			return nil, fmt.Errorf("location offset: %w", err)
		}
		return loc, nil
	}
	if def != nil {
		return def, nil
	}
	return Default(), nil
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

// DayBounds returns [midnight, next midnight) of the calendar day of t in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
