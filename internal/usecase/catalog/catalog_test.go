package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/staysharp/booking-api/internal/models"
)

type fakeRepo struct {
	barbers []models.Barber
	hours   []models.WorkingHours
	calls   int
	err     error
}

func (f *fakeRepo) ListLocations(ctx context.Context) ([]models.Location, error) {
	f.calls++
	return []models.Location{{ID: 1, Name: "Downtown"}}, f.err
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	f.calls++
	return []models.Service{{ID: 100, Name: "Haircut", DurationMinutes: 30}}, f.err
}

func (f *fakeRepo) ListBarbers(ctx context.Context, locationID uint) ([]models.Barber, error) {
	f.calls++
	var out []models.Barber
	for _, b := range f.barbers {
		if locationID == 0 || b.LocationID == locationID {
			out = append(out, b)
		}
	}
	return out, f.err
}

func (f *fakeRepo) ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error) {
	f.calls++
	return f.hours, f.err
}

// mapCache round-trips through JSON like the Redis cache does.
type mapCache struct {
	items map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{items: map[string][]byte{}} }

func (m *mapCache) Get(ctx context.Context, key string, dst any) bool {
	b, ok := m.items[key]
	if !ok {
		return false
	}
	return json.Unmarshal(b, dst) == nil
}

func (m *mapCache) Set(ctx context.Context, key string, value any) {
	b, _ := json.Marshal(value)
	m.items[key] = b
}

type fakePhotos struct{}

func (fakePhotos) PhotoURL(ctx context.Context, key string) (string, error) {
	return "https://photos.test/" + key + "?sig=1", nil
}

func TestKey(t *testing.T) {
	cases := map[string]string{
		Key("locations"):         "catalog:locations",
		Key("barbers", uint(0)):  "catalog:barbers:0",
		Key("barbers", uint(12)): "catalog:barbers:12",
		Key("working-hours", 3):  "catalog:working-hours:3",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestSplitSpecialties(t *testing.T) {
	got := SplitSpecialties(" Fades, Beard trims,, Hot towel shave ,")
	want := []string{"Fades", "Beard trims", "Hot towel shave"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := SplitSpecialties(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestListBarbers_DecoratesPhotos(t *testing.T) {
	repo := &fakeRepo{barbers: []models.Barber{
		{ID: 10, LocationID: 1, Name: "Sam", PhotoKey: "barbers/sam.jpg", Specialties: "Fades"},
		{ID: 11, LocationID: 1, Name: "Alex"},
		{ID: 20, LocationID: 2, Name: "Jo"},
	}}
	c := New(repo, nil, fakePhotos{})

	out, err := c.ListBarbers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 barbers, got %d", len(out))
	}
	if out[0].PhotoURL != "https://photos.test/barbers/sam.jpg?sig=1" {
		t.Fatalf("unexpected photo url %q", out[0].PhotoURL)
	}
	if out[1].PhotoURL != "" {
		t.Fatalf("barber without photo must not get a url")
	}
	if !reflect.DeepEqual(out[0].Specialties, []string{"Fades"}) {
		t.Fatalf("unexpected specialties %v", out[0].Specialties)
	}
}

func TestCache_ServesSecondRead(t *testing.T) {
	repo := &fakeRepo{barbers: []models.Barber{
		{ID: 10, LocationID: 1, Name: "Sam", PhotoKey: "barbers/sam.jpg"},
	}}
	c := New(repo, newMapCache(), fakePhotos{})

	for i := 0; i < 3; i++ {
		out, err := c.ListBarbers(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Photo key must survive the cache round trip.
		if out[0].PhotoURL == "" {
			t.Fatalf("read %d lost the photo url", i)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected one store read, got %d", repo.calls)
	}

	if _, err := c.ListBarbers(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("different location must miss the cache")
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepo{err: boom}
	cache := newMapCache()
	c := New(repo, cache, nil)

	if _, err := c.ListServices(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(cache.items) != 0 {
		t.Fatalf("failed reads must not be cached")
	}
}

func TestGetWorkingHours(t *testing.T) {
	repo := &fakeRepo{hours: []models.WorkingHours{
		{BarberID: 10, DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
	}}
	c := New(repo, nil, nil)

	out, err := c.GetWorkingHours(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].DayOfWeek != 2 || out[0].StartTime != "09:00" {
		t.Fatalf("unexpected schedule %+v", out)
	}
}
