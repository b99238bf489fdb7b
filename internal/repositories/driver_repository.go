package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rodaBack/internal/models"
)

type DriverRepository struct {
	DB *sql.DB
}

const driverColumns = `
    d.id, d.name, d.gender, d.phone, d.city, d.status, d.photo_url,
    d.id_photo_url_front, d.id_photo_url_back,
    d.license_photo_url_front, d.license_photo_url_back,
    d.contract_url, d.notary_power_url,
    d.created_at, d.updated_at`

func scanDriver(row *sql.Row) (models.Driver, error) {
	var d models.Driver
	var photo sql.NullString
	err := row.Scan(
		&d.ID, &d.Name, &d.Gender, &d.Phone, &d.City, &d.Status, &photo,
		&d.IDPhotoURLFront, &d.IDPhotoURLBack,
		&d.LicensePhotoURLFront, &d.LicensePhotoURLBack,
		&d.ContractURL, &d.NotaryPowerURL,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return models.Driver{}, err
	}
	d.PhotoURL = photo.String
	return d, nil
}

// ListByStatus returns one page of drivers in a given verification status,
// newest first. A page past the end of the data comes back empty, not as an
// error.
func (r *DriverRepository) ListByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Driver, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 0 {
		page = 0
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT`+driverColumns+`
    FROM drivers d
    WHERE d.status = ?
    ORDER BY d.created_at DESC
    LIMIT ? OFFSET ?`, status, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		var photo sql.NullString
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Gender, &d.Phone, &d.City, &d.Status, &photo,
			&d.IDPhotoURLFront, &d.IDPhotoURLBack,
			&d.LicensePhotoURLFront, &d.LicensePhotoURLBack,
			&d.ContractURL, &d.NotaryPowerURL,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		d.PhotoURL = photo.String
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drivers, nil
}

// GetByID fetches a driver together with their vehicle, if any.
func (r *DriverRepository) GetByID(ctx context.Context, id string) (models.Driver, error) {
	d, err := scanDriver(r.DB.QueryRowContext(ctx, `SELECT`+driverColumns+`
    FROM drivers d
    WHERE d.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Driver{}, err
	}

	vehicle, err := r.vehicleByDriver(ctx, id)
	if err != nil {
		return models.Driver{}, err
	}
	d.Vehicle = vehicle
	return d, nil
}

func (r *DriverRepository) vehicleByDriver(ctx context.Context, driverID string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.DB.QueryRowContext(ctx, `SELECT
        license_plate, brand, line, model, engine_displacement, color, type,
        property_card_photo_url_front, property_card_photo_url_back,
        owner_id, created_at
    FROM vehicles
    WHERE driver_id = ?`, driverID).Scan(
		&v.LicensePlate, &v.Brand, &v.Line, &v.Model, &v.EngineDisplacement,
		&v.Color, &v.Type,
		&v.PropertyCardPhotoURLFront, &v.PropertyCardPhotoURLBack,
		&v.OwnerID, &v.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateStatus overwrites the driver's verification status unconditionally.
// Transition preconditions live in the service layer.
func (r *DriverRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE drivers SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNoRecord
	}
	return nil
}
