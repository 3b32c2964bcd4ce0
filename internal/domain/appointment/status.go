package appointment

import "github.com/staysharp/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

// StatusBooked is the only status that occupies a barber's time. Other
// statuses are written by processes outside this service.
const StatusBooked Status = "booked"

func InitialStatus() Status {
	return StatusBooked
}

// ===============================
// Failure modes
// ===============================

var (
	ErrMalformed        = httperr.Validation("invalid_request", "missing or malformed field")
	ErrStartInPast      = httperr.Validation("start_in_past", "start time is in the past")
	ErrOutsideHours     = httperr.Validation("outside_working_hours", "requested time is outside the barber's working hours")
	ErrLocationNotFound = httperr.NotFound("location_not_found", "location not found")
	ErrBarberNotFound   = httperr.NotFound("barber_not_found", "barber not found for location")
	ErrServiceNotFound  = httperr.NotFound("service_not_found", "service not found")
	ErrSlotTaken        = httperr.Conflict("time_conflict", "time slot already booked")
)
