package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"rodaBack/internal/cache"
	"rodaBack/internal/models"
)

type fakeDriverStore struct {
	drivers map[string]models.Driver
}

func (s *fakeDriverStore) ListByStatus(_ context.Context, status string, page, pageSize int) ([]models.Driver, error) {
	matched := []models.Driver{}
	for _, d := range s.drivers {
		if d.Status == status {
			matched = append(matched, d)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	offset := page * pageSize
	if offset >= len(matched) {
		return []models.Driver{}, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *fakeDriverStore) GetByID(_ context.Context, id string) (models.Driver, error) {
	d, ok := s.drivers[id]
	if !ok {
		return models.Driver{}, models.ErrNoRecord
	}
	return d, nil
}

func (s *fakeDriverStore) UpdateStatus(_ context.Context, id, status string) error {
	d, ok := s.drivers[id]
	if !ok {
		return models.ErrNoRecord
	}
	d.Status = status
	s.drivers[id] = d
	return nil
}

type fakeCache struct {
	data        map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	val, ok := c.data[key]
	return val, ok
}

func (c *fakeCache) Set(_ context.Context, key string, val []byte) {
	c.data[key] = val
}

func (c *fakeCache) Invalidate(_ context.Context, prefix string) error {
	c.invalidated = append(c.invalidated, prefix)
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

func testDriver(id, status string, createdAt time.Time) models.Driver {
	return models.Driver{
		ID:                   id,
		Name:                 "Test Driver " + id,
		Status:               status,
		IDPhotoURLFront:      id + "/id-front.jpg",
		IDPhotoURLBack:       id + "/id-back.jpg",
		LicensePhotoURLFront: id + "/license-front.jpg",
		LicensePhotoURLBack:  id + "/license-back.jpg",
		CreatedAt:            createdAt,
	}
}

func TestAvailableTransitions(t *testing.T) {
	for _, current := range models.DriverStatuses {
		targets := AvailableTransitions(current)
		if len(targets) != 3 {
			t.Fatalf("expected 3 transitions from %s, got %d", current, len(targets))
		}
		for _, target := range targets {
			if target == current {
				t.Fatalf("transitions from %s include the current status", current)
			}
			if !models.ValidDriverStatus(target) {
				t.Fatalf("transition target %s is not a valid status", target)
			}
		}
	}
}

func TestListDriversFiltersAndOrders(t *testing.T) {
	base := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeDriverStore{drivers: map[string]models.Driver{
		"1": testDriver("1", models.StatusPending, base),
		"2": testDriver("2", models.StatusPending, base.Add(2*time.Hour)),
		"3": testDriver("3", models.StatusPending, base.Add(time.Hour)),
		"4": testDriver("4", models.StatusAccepted, base.Add(3*time.Hour)),
	}}
	svc := &DriverService{Drivers: store}

	drivers, err := svc.ListDrivers(context.Background(), models.StatusPending, 0, 2)
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	if len(drivers) != 2 {
		t.Fatalf("expected 2 drivers on the first page, got %d", len(drivers))
	}
	for _, d := range drivers {
		if d.Status != models.StatusPending {
			t.Fatalf("driver %s has status %s, wanted pending", d.ID, d.Status)
		}
	}
	if drivers[0].ID != "2" || drivers[1].ID != "3" {
		t.Fatalf("expected newest-first order [2 3], got [%s %s]", drivers[0].ID, drivers[1].ID)
	}
}

func TestListDriversEmptyPage(t *testing.T) {
	store := &fakeDriverStore{drivers: map[string]models.Driver{}}
	svc := &DriverService{Drivers: store}

	drivers, err := svc.ListDrivers(context.Background(), models.StatusArchived, 5, 10)
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	if len(drivers) != 0 {
		t.Fatalf("expected empty page, got %d drivers", len(drivers))
	}
}

func TestListDriversRejectsUnknownStatus(t *testing.T) {
	svc := &DriverService{Drivers: &fakeDriverStore{}}
	if _, err := svc.ListDrivers(context.Background(), "banana", 0, 10); err != models.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestProcessDriverAllTransitions(t *testing.T) {
	for _, from := range models.DriverStatuses {
		for _, to := range models.DriverStatuses {
			store := &fakeDriverStore{drivers: map[string]models.Driver{
				"D1": testDriver("D1", from, time.Now()),
			}}
			svc := &DriverService{Drivers: store}

			if err := svc.ProcessDriver(context.Background(), "D1", to); err != nil {
				t.Fatalf("transition %s -> %s: %v", from, to, err)
			}
			got, err := svc.GetDriver(context.Background(), "D1")
			if err != nil {
				t.Fatalf("GetDriver after %s -> %s: %v", from, to, err)
			}
			if got.Status != to {
				t.Fatalf("transition %s -> %s left status %s", from, to, got.Status)
			}
		}
	}
}

func TestProcessDriverUpdatesListings(t *testing.T) {
	store := &fakeDriverStore{drivers: map[string]models.Driver{
		"D1": testDriver("D1", models.StatusPending, time.Now()),
	}}
	listingCache := newFakeCache()
	svc := &DriverService{Drivers: store, Cache: listingCache}
	ctx := context.Background()

	pending, err := svc.ListDrivers(ctx, models.StatusPending, 0, 10)
	if err != nil {
		t.Fatalf("ListDrivers pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "D1" {
		t.Fatalf("expected D1 in the pending listing, got %v", pending)
	}

	if err := svc.ProcessDriver(ctx, "D1", models.StatusAccepted); err != nil {
		t.Fatalf("ProcessDriver: %v", err)
	}

	pending, err = svc.ListDrivers(ctx, models.StatusPending, 0, 10)
	if err != nil {
		t.Fatalf("ListDrivers pending after accept: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("D1 still listed as pending after accept: %v", pending)
	}

	accepted, err := svc.ListDrivers(ctx, models.StatusAccepted, 0, 10)
	if err != nil {
		t.Fatalf("ListDrivers accepted: %v", err)
	}
	if len(accepted) != 1 || accepted[0].ID != "D1" {
		t.Fatalf("expected D1 in the accepted listing, got %v", accepted)
	}
}

func TestProcessDriverInvalidatesBothStatuses(t *testing.T) {
	store := &fakeDriverStore{drivers: map[string]models.Driver{
		"D1": testDriver("D1", models.StatusRejected, time.Now()),
	}}
	listingCache := newFakeCache()
	svc := &DriverService{Drivers: store, Cache: listingCache}

	if err := svc.ProcessDriver(context.Background(), "D1", models.StatusArchived); err != nil {
		t.Fatalf("ProcessDriver: %v", err)
	}

	want := []string{
		cache.DriversListPrefix(models.StatusRejected),
		cache.DriversListPrefix(models.StatusArchived),
	}
	if len(listingCache.invalidated) != len(want) {
		t.Fatalf("expected %d invalidations, got %v", len(want), listingCache.invalidated)
	}
	for i, prefix := range want {
		if listingCache.invalidated[i] != prefix {
			t.Fatalf("expected invalidation of %s, got %s", prefix, listingCache.invalidated[i])
		}
	}
}

func TestProcessDriverSelfTransitionIsNoOp(t *testing.T) {
	store := &fakeDriverStore{drivers: map[string]models.Driver{
		"D1": testDriver("D1", models.StatusAccepted, time.Now()),
	}}
	listingCache := newFakeCache()
	svc := &DriverService{Drivers: store, Cache: listingCache}

	if err := svc.ProcessDriver(context.Background(), "D1", models.StatusAccepted); err != nil {
		t.Fatalf("self transition: %v", err)
	}
	if len(listingCache.invalidated) != 0 {
		t.Fatalf("self transition should not invalidate listings, got %v", listingCache.invalidated)
	}
}

func TestProcessDriverErrors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		svc := &DriverService{Drivers: &fakeDriverStore{}}
		if err := svc.ProcessDriver(context.Background(), "D1", "suspended"); err != models.ErrInvalidStatus {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		svc := &DriverService{Drivers: &fakeDriverStore{drivers: map[string]models.Driver{}}}
		if err := svc.ProcessDriver(context.Background(), "missing", models.StatusAccepted); err != models.ErrNoRecord {
			t.Fatalf("expected ErrNoRecord, got %v", err)
		}
	})

	t.Run("incomplete documents", func(t *testing.T) {
		driver := testDriver("D1", models.StatusPending, time.Now())
		driver.LicensePhotoURLBack = ""
		store := &fakeDriverStore{drivers: map[string]models.Driver{"D1": driver}}
		svc := &DriverService{Drivers: store}

		if err := svc.ProcessDriver(context.Background(), "D1", models.StatusAccepted); err != models.ErrMissingDocuments {
			t.Fatalf("expected ErrMissingDocuments, got %v", err)
		}
		got, _ := svc.GetDriver(context.Background(), "D1")
		if got.Status != models.StatusPending {
			t.Fatalf("failed accept changed status to %s", got.Status)
		}

		// Rejecting works regardless of the document set.
		if err := svc.ProcessDriver(context.Background(), "D1", models.StatusRejected); err != nil {
			t.Fatalf("reject with incomplete documents: %v", err)
		}
	})

	t.Run("vehicle without property card", func(t *testing.T) {
		driver := testDriver("D1", models.StatusPending, time.Now())
		driver.Vehicle = &models.Vehicle{LicensePlate: "ABC123"}
		store := &fakeDriverStore{drivers: map[string]models.Driver{"D1": driver}}
		svc := &DriverService{Drivers: store}

		if err := svc.ProcessDriver(context.Background(), "D1", models.StatusAccepted); err != models.ErrMissingDocuments {
			t.Fatalf("expected ErrMissingDocuments, got %v", err)
		}
	})
}
