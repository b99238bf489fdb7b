package services

import (
	"context"
	"encoding/json"
	"log"

	"rodaBack/internal/cache"
	"rodaBack/internal/models"
)

// DriverStore is the record store behind the verification workflow.
type DriverStore interface {
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Driver, error)
	GetByID(ctx context.Context, id string) (models.Driver, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ListingCache caches serialized listing pages keyed by query tuple.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Invalidate(ctx context.Context, prefix string) error
}

// TransitionObserver is told about applied transitions. Observers must never
// block the workflow.
type TransitionObserver interface {
	DriverProcessed(ctx context.Context, driverID, status string)
}

// DriverService runs the driver verification workflow: filtered listings,
// single lookups and the accept/reject/archive state machine.
type DriverService struct {
	Drivers  DriverStore
	Cache    ListingCache
	Observer TransitionObserver
}

// AvailableTransitions returns the statuses an operator can move a driver
// to: every status except the current one.
func AvailableTransitions(current string) []string {
	targets := make([]string, 0, len(models.DriverStatuses)-1)
	for _, s := range models.DriverStatuses {
		if s == current {
			continue
		}
		targets = append(targets, s)
	}
	return targets
}

// ListDrivers returns one page of a status tab, consulting the listing
// cache first.
func (s *DriverService) ListDrivers(ctx context.Context, status string, page, pageSize int) ([]models.Driver, error) {
	if !models.ValidDriverStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	key := cache.DriversListKey(status, page, pageSize)
	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var drivers []models.Driver
			if err := json.Unmarshal(raw, &drivers); err == nil {
				return drivers, nil
			}
		}
	}

	drivers, err := s.Drivers.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(drivers); err == nil {
			s.Cache.Set(ctx, key, raw)
		}
	}
	return drivers, nil
}

func (s *DriverService) GetDriver(ctx context.Context, id string) (models.Driver, error) {
	return s.Drivers.GetByID(ctx, id)
}

// ProcessDriver applies a verification verdict. Moving to the same status is
// an idempotent no-op. Accepting requires the driver's document set to be
// complete. After a write, cached listings of both the previous and the new
// status are dropped.
func (s *DriverService) ProcessDriver(ctx context.Context, id, target string) error {
	if !models.ValidDriverStatus(target) {
		return models.ErrInvalidStatus
	}

	driver, err := s.Drivers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if driver.Status == target {
		return nil
	}
	if target == models.StatusAccepted {
		if !documentsComplete(driver) {
			return models.ErrMissingDocuments
		}
	}

	if err := s.Drivers.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	if s.Cache != nil {
		for _, status := range []string{driver.Status, target} {
			if err := s.Cache.Invalidate(ctx, cache.DriversListPrefix(status)); err != nil {
				log.Printf("Error invalidating %s listing cache: %v", status, err)
			}
		}
	}

	if s.Observer != nil {
		go s.Observer.DriverProcessed(context.Background(), id, target)
	}
	return nil
}

// documentsComplete checks the identity and license photos, plus both
// property-card photos when a vehicle is registered.
func documentsComplete(d models.Driver) bool {
	required := []string{
		d.IDPhotoURLFront,
		d.IDPhotoURLBack,
		d.LicensePhotoURLFront,
		d.LicensePhotoURLBack,
	}
	if d.Vehicle != nil {
		required = append(required, d.Vehicle.PropertyCardPhotoURLFront, d.Vehicle.PropertyCardPhotoURLBack)
	}
	for _, key := range required {
		if key == "" {
			return false
		}
	}
	return true
}
