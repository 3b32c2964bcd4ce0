package models

import "time"

type Location struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Address1 string `gorm:"size:255" json:"address1"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:50" json:"state"`
	Phone    string `gorm:"size:20" json:"phone"`

	// UTCOffset anchors this location's working hours, e.g. "-08:00".
	// Empty means the process-wide default.
	UTCOffset string `gorm:"column:utc_offset;size:6" json:"utc_offset"`

	Active bool `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
