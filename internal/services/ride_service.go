package services

import (
	"context"
	"fmt"

	"rodaBack/internal/models"
)

// Entity kinds accepted by the ride-history aggregator.
const (
	EntityDriver    = "driver"
	EntityPassenger = "passenger"
)

// RideStore is the read-only ride projection source.
type RideStore interface {
	List(ctx context.Context, page, pageSize int) ([]models.RideSummary, int, error)
	GetByID(ctx context.Context, id int64) (models.RideHistory, error)
	HistoryByDriver(ctx context.Context, driverID string) ([]models.RideHistory, error)
	HistoryByPassenger(ctx context.Context, passengerID string) ([]models.RideHistory, error)
	CountCompletedToday(ctx context.Context) (int, error)
}

// RideService exposes ride listings, single rides, per-entity ride history
// and the daily report. Everything here is read-only.
type RideService struct {
	Rides RideStore
}

func (s *RideService) ListRides(ctx context.Context, page, pageSize int) ([]models.RideSummary, int, error) {
	return s.Rides.List(ctx, page, pageSize)
}

func (s *RideService) GetRide(ctx context.Context, id int64) (models.RideHistory, error) {
	return s.Rides.GetByID(ctx, id)
}

// HistoryFor joins a driver or passenger identity to their past rides.
func (s *RideService) HistoryFor(ctx context.Context, kind, id string) ([]models.RideHistory, error) {
	switch kind {
	case EntityDriver:
		return s.Rides.HistoryByDriver(ctx, id)
	case EntityPassenger:
		return s.Rides.HistoryByPassenger(ctx, id)
	default:
		return nil, fmt.Errorf("unknown history entity kind %q", kind)
	}
}

func (s *RideService) CompletedToday(ctx context.Context) (int, error) {
	return s.Rides.CountCompletedToday(ctx)
}
