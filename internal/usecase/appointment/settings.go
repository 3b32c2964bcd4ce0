package appointment

import (
	"time"

	"github.com/staysharp/booking-api/internal/timezone"
)

// Settings carries the scheduling configuration shared by the use cases.
type Settings struct {
	// DefaultLocation anchors working hours for locations without their own offset.
	DefaultLocation *time.Location
	SlotGranularity time.Duration
	Now             func() time.Time

	// EnforceBookingWindow additionally rejects bookings that start in the
	// past or fall outside the barber's working hours. Off by default.
	EnforceBookingWindow bool
}

func (s Settings) withDefaults() Settings {
	if s.DefaultLocation == nil {
		s.DefaultLocation = timezone.Default()
	}
	if s.SlotGranularity <= 0 {
		s.SlotGranularity = 15 * time.Minute
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	return s
}
