package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/staysharp/booking-api/internal/models"
)

// appointments_no_overlap rejects two booked rows of one barber whose
// [start_ts, end_ts) ranges intersect.
const constraints = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_end_after_start'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_end_after_start CHECK (end_ts > start_ts);
	END IF;

	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (
				barber_id WITH =,
				tstzrange(start_ts, end_ts, '[)') WITH &&
			) WHERE (status = 'booked');
	END IF;
END
$$;`

func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(
		&models.Location{},
		&models.Service{},
		&models.Barber{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return tx.Exec(constraints).Error
}
