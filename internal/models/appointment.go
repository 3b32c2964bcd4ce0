package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LocationID uint     `gorm:"not null" json:"location_id"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	BarberID uint   `gorm:"not null;index:idx_appointments_barber_start,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// EndTS is start + service duration, stored so overlap queries need no join.
	StartTS time.Time `gorm:"column:start_ts;type:timestamptz;not null;index:idx_appointments_barber_start,priority:2" json:"start_ts"`
	EndTS   time.Time `gorm:"column:end_ts;type:timestamptz;not null" json:"end_ts"`

	Status string `gorm:"size:20;not null;default:'booked'" json:"status"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:30" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
