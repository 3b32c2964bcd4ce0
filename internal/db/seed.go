package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/staysharp/booking-api/internal/models"
)

// Seed inserts a demo location with barbers, services and a Tuesday to
// Saturday schedule. It does nothing when any location already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Location{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		loc := models.Location{
			Name:      "StaySharp Downtown",
			Address1:  "412 Main St",
			City:      "Portland",
			State:     "OR",
			Phone:     "(503) 555-0142",
			UTCOffset: "-08:00",
			Active:    true,
		}
		if err := tx.Create(&loc).Error; err != nil {
			return err
		}

		services := []models.Service{
			{Name: "Classic Cut", Description: "Scissor or clipper cut with a hot towel finish.", DurationMinutes: 30, PriceCents: 3500, Active: true},
			{Name: "Skin Fade", Description: "Zero fade blended to your length of choice.", DurationMinutes: 45, PriceCents: 4500, Active: true},
			{Name: "Beard Trim", Description: "Shape up and line up with straight razor edges.", DurationMinutes: 15, PriceCents: 2000, Active: true},
			{Name: "Cut & Beard", Description: "Full haircut plus beard trim.", DurationMinutes: 60, PriceCents: 5500, Active: true},
		}
		if err := tx.Create(&services).Error; err != nil {
			return err
		}

		barbers := []models.Barber{
			{LocationID: loc.ID, Name: "Marcus Reed", Bio: "Fades and tapers.", PhotoKey: "barbers/marcus.jpg", YearsExperience: 9, Specialties: "Fades,Tapers,Beard work", Active: true},
			{LocationID: loc.ID, Name: "Dana Cruz", Bio: "Classic scissor cuts.", PhotoKey: "barbers/dana.jpg", YearsExperience: 6, Specialties: "Scissor cuts,Long hair", Active: true},
		}
		if err := tx.Create(&barbers).Error; err != nil {
			return err
		}

		var hours []models.WorkingHours
		for _, b := range barbers {
			for _, day := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday} {
				hours = append(hours, models.WorkingHours{
					BarberID:  b.ID,
					DayOfWeek: int(day),
					StartTime: "09:00",
					EndTime:   "17:00",
				})
			}
		}
		return tx.Create(&hours).Error
	})
}
