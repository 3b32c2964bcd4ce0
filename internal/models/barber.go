package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LocationID uint     `gorm:"not null;index" json:"location_id"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`

	Bio             string `gorm:"type:text" json:"bio"`
	PhotoKey        string `gorm:"size:255" json:"photo_key,omitempty"`
	YearsExperience int    `json:"years_experience"`
	Specialties     string `gorm:"size:255" json:"specialties"` // comma separated

	Active bool `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
