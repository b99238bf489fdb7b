package repositories

import (
	"context"
	"database/sql"
	"errors"

	"rodaBack/internal/models"
)

type RideRepository struct {
	DB *sql.DB
}

// List returns finished rides (completed or canceled), newest first, plus
// the total count for the pager.
func (r *RideRepository) List(ctx context.Context, page, pageSize int) ([]models.RideSummary, int, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 0 {
		page = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rides WHERE status IN (?, ?)`,
		models.RideCompleted, models.RideCanceled).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT id, request_time, start_time, end_time, status
    FROM rides
    WHERE status IN (?, ?)
    ORDER BY id DESC
    LIMIT ? OFFSET ?`,
		models.RideCompleted, models.RideCanceled, pageSize, page*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rides := []models.RideSummary{}
	for rows.Next() {
		var ride models.RideSummary
		if err := rows.Scan(&ride.ID, &ride.RequestTime, &ride.StartTime, &ride.EndTime, &ride.Status); err != nil {
			return nil, 0, err
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return rides, total, nil
}

// GetByID fetches the full ride projection including both parties' display
// fields and the driver's vehicle.
func (r *RideRepository) GetByID(ctx context.Context, id int64) (models.RideHistory, error) {
	var ride models.RideHistory
	var passenger models.RideParty
	var driver models.RideParty
	var plate sql.NullString
	var v models.Vehicle
	var vCreated sql.NullTime

	err := r.DB.QueryRowContext(ctx, `SELECT
        r.id, r.pickup_location, r.destination, r.final_price, r.comments,
        r.request_time, r.start_time, r.end_time, r.gender, r.affiliate_id, r.status,
        p.name, p.phone,
        d.name, d.phone,
        v.license_plate,
        COALESCE(v.brand, ''), COALESCE(v.line, ''), COALESCE(v.model, ''),
        COALESCE(v.engine_displacement, ''), COALESCE(v.color, ''), COALESCE(v.type, ''),
        COALESCE(v.property_card_photo_url_front, ''), COALESCE(v.property_card_photo_url_back, ''),
        COALESCE(v.owner_id, ''), v.created_at
    FROM rides r
    JOIN passengers p ON p.id = r.passenger_id
    JOIN drivers d ON d.id = r.driver_id
    LEFT JOIN vehicles v ON v.driver_id = d.id
    WHERE r.id = ?`, id).Scan(
		&ride.ID, &ride.PickupLocation, &ride.Destination, &ride.FinalPrice, &ride.Comments,
		&ride.RequestTime, &ride.StartTime, &ride.EndTime, &ride.Gender, &ride.AffiliateID, &ride.Status,
		&passenger.Name, &passenger.Phone,
		&driver.Name, &driver.Phone,
		&plate, &v.Brand, &v.Line, &v.Model, &v.EngineDisplacement, &v.Color, &v.Type,
		&v.PropertyCardPhotoURLFront, &v.PropertyCardPhotoURLBack, &v.OwnerID, &vCreated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RideHistory{}, models.ErrNoRecord
	}
	if err != nil {
		return models.RideHistory{}, err
	}

	if plate.Valid {
		v.LicensePlate = plate.String
		v.CreatedAt = vCreated.Time
		driver.Vehicle = &v
	}
	ride.Passenger = &passenger
	ride.Driver = &driver
	return ride, nil
}

// HistoryByDriver lists past rides for a driver. No ordering is promised.
func (r *RideRepository) HistoryByDriver(ctx context.Context, driverID string) ([]models.RideHistory, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT
        id, pickup_location, destination, final_price, request_time, gender, affiliate_id, status
    FROM rides
    WHERE driver_id = ?`, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.RideHistory{}
	for rows.Next() {
		var ride models.RideHistory
		if err := rows.Scan(&ride.ID, &ride.PickupLocation, &ride.Destination, &ride.FinalPrice,
			&ride.RequestTime, &ride.Gender, &ride.AffiliateID, &ride.Status); err != nil {
			return nil, err
		}
		history = append(history, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// HistoryByPassenger lists past rides for a passenger. No ordering is
// promised.
func (r *RideRepository) HistoryByPassenger(ctx context.Context, passengerID string) ([]models.RideHistory, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT
        id, pickup_location, destination, gender, affiliate_id, status
    FROM rides
    WHERE passenger_id = ?`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.RideHistory{}
	for rows.Next() {
		var ride models.RideHistory
		if err := rows.Scan(&ride.ID, &ride.PickupLocation, &ride.Destination,
			&ride.Gender, &ride.AffiliateID, &ride.Status); err != nil {
			return nil, err
		}
		history = append(history, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// CountCompletedToday counts rides completed since local midnight, for the
// daily report.
func (r *RideRepository) CountCompletedToday(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM rides WHERE status = ? AND request_time >= CURDATE()`,
		models.RideCompleted).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
