package dto

import "time"

// BookingDTO is returned after a successful booking.
type BookingDTO struct {
	ID      uint      `json:"id"`
	StartTS time.Time `json:"start_ts"`
	EndTS   time.Time `json:"end_ts"`
	Status  string    `json:"status"`
}

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	StartTS       time.Time `json:"start_ts"`
	EndTS         time.Time `json:"end_ts"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	LocationName  string    `json:"location_name"`
	ServiceName   string    `json:"service_name"`
	BarberName    string    `json:"barber_name"`
}

type BarberDTO struct {
	ID              uint     `json:"id"`
	LocationID      uint     `json:"location_id"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio,omitempty"`
	PhotoURL        string   `json:"photo_url,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Specialties     []string `json:"specialties"`
}

type WorkingDayDTO struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
