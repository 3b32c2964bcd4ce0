package models

import "time"

// WorkingHours is one barber's recurring window for one day of the week.
// StartTime/EndTime are "HH:MM" local civil time.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"not null;uniqueIndex:idx_working_hours_barber_day,priority:1" json:"barber_id"`

	DayOfWeek int `gorm:"not null;uniqueIndex:idx_working_hours_barber_day,priority:2;check:day_of_week BETWEEN 0 AND 6" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
