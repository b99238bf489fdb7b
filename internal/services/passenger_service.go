package services

import (
	"context"

	"rodaBack/internal/models"
	"rodaBack/internal/repositories"
)

type PassengerService struct {
	PassengerRepo *repositories.PassengerRepository
}

func (s *PassengerService) ListPassengers(ctx context.Context, page, pageSize int) ([]models.Passenger, int, error) {
	return s.PassengerRepo.List(ctx, page, pageSize)
}

func (s *PassengerService) GetPassengerByID(ctx context.Context, id string) (models.Passenger, error) {
	return s.PassengerRepo.GetByID(ctx, id)
}
