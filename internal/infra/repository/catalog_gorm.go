package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staysharp/booking-api/internal/models"
	"github.com/staysharp/booking-api/internal/usecase/catalog"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&locations).Error; err != nil {
		return nil, classify(err)
	}
	return locations, nil
}

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, classify(err)
	}
	return services, nil
}

// ListBarbers lists active barbers, restricted to one location unless
// locationID is zero.
func (r *CatalogGormRepository) ListBarbers(ctx context.Context, locationID uint) ([]models.Barber, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if locationID != 0 {
		q = q.Where("location_id = ?", locationID)
	}

	var barbers []models.Barber
	if err := q.Order("id ASC").Find(&barbers).Error; err != nil {
		return nil, classify(err)
	}
	return barbers, nil
}

func (r *CatalogGormRepository) ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error) {
	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, classify(err)
	}
	return hours, nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
