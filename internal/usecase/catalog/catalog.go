package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/staysharp/booking-api/internal/dto"
	"github.com/staysharp/booking-api/internal/models"
)

// Repository reads the slow-changing reference data.
type Repository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	// ListBarbers lists active barbers; locationID 0 means every location.
	ListBarbers(ctx context.Context, locationID uint) ([]models.Barber, error)
	ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error)
}

// Cache stores JSON-encodable values. Implementations swallow their own
// failures and report them as misses.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any)
}

// PhotoURLs turns a stored photo reference into a URL a browser can load.
type PhotoURLs interface {
	PhotoURL(ctx context.Context, key string) (string, error)
}

type Catalog struct {
	repo   Repository
	cache  Cache
	photos PhotoURLs
}

// New builds the catalog. cache and photos are optional.
func New(repo Repository, cache Cache, photos PhotoURLs) *Catalog {
	return &Catalog{repo: repo, cache: cache, photos: photos}
}

// Key builds a cache key: catalog:<kind>[:<arg>...].
func Key(kind string, args ...any) string {
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, "catalog", kind)
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, ":")
}

func (c *Catalog) ListLocations(ctx context.Context) ([]models.Location, error) {
	return cached(ctx, c.cache, Key("locations"), c.repo.ListLocations)
}

func (c *Catalog) ListServices(ctx context.Context) ([]models.Service, error) {
	return cached(ctx, c.cache, Key("services"), c.repo.ListServices)
}

func (c *Catalog) ListBarbers(ctx context.Context, locationID uint) ([]dto.BarberDTO, error) {
	barbers, err := cached(ctx, c.cache, Key("barbers", locationID),
		func(ctx context.Context) ([]models.Barber, error) {
			return c.repo.ListBarbers(ctx, locationID)
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		item := dto.BarberDTO{
			ID:              b.ID,
			LocationID:      b.LocationID,
			Name:            b.Name,
			Bio:             b.Bio,
			YearsExperience: b.YearsExperience,
			Specialties:     SplitSpecialties(b.Specialties),
		}

		// Only the key is cached; URLs are presigned per response.
		if c.photos != nil && b.PhotoKey != "" {
			url, err := c.photos.PhotoURL(ctx, b.PhotoKey)
			if err != nil {
				return nil, err
			}
			item.PhotoURL = url
		}

		out = append(out, item)
	}
	return out, nil
}

func (c *Catalog) GetWorkingHours(ctx context.Context, barberID uint) ([]dto.WorkingDayDTO, error) {
	hours, err := cached(ctx, c.cache, Key("working-hours", barberID),
		func(ctx context.Context) ([]models.WorkingHours, error) {
			return c.repo.ListWorkingHours(ctx, barberID)
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.WorkingDayDTO, 0, len(hours))
	for _, wh := range hours {
		out = append(out, dto.WorkingDayDTO{
			DayOfWeek: wh.DayOfWeek,
			StartTime: wh.StartTime,
			EndTime:   wh.EndTime,
		})
	}
	return out, nil
}

// SplitSpecialties turns "Fades, Beard trims," into ["Fades", "Beard trims"].
func SplitSpecialties(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cached[T any](
	ctx context.Context,
	cache Cache,
	key string,
	load func(context.Context) (T, error),
) (T, error) {
	var v T
	if cache != nil && cache.Get(ctx, key, &v) {
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if cache != nil {
		cache.Set(ctx, key, v)
	}
	return v, nil
}
