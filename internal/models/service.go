package models

import "time"

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	DurationMinutes int `gorm:"not null;check:duration_minutes > 0" json:"duration_minutes"`
	PriceCents      int `gorm:"not null;default:0" json:"price_cents"`

	Active bool `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
