package repositories

import (
	"context"
	"database/sql"
	"errors"

	"rodaBack/internal/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

const passengerColumns = `
    p.id, p.name, p.gender, p.phone, p.email, p.created_at,
    (SELECT COUNT(*) FROM rides r WHERE r.passenger_id = p.id) AS ride_count`

// List returns one page of passengers, newest first, plus the total count
// for the pager.
func (r *PassengerRepository) List(ctx context.Context, page, pageSize int) ([]models.Passenger, int, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 0 {
		page = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT`+passengerColumns+`
    FROM passengers p
    ORDER BY p.created_at DESC
    LIMIT ? OFFSET ?`, pageSize, page*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	passengers := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.Gender, &p.Phone, &p.Email, &p.CreatedAt, &p.RideCount); err != nil {
			return nil, 0, err
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return passengers, total, nil
}

func (r *PassengerRepository) GetByID(ctx context.Context, id string) (models.Passenger, error) {
	var p models.Passenger
	err := r.DB.QueryRowContext(ctx, `SELECT`+passengerColumns+`
    FROM passengers p
    WHERE p.id = ?`, id).Scan(&p.ID, &p.Name, &p.Gender, &p.Phone, &p.Email, &p.CreatedAt, &p.RideCount)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Passenger{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Passenger{}, err
	}
	return p, nil
}
