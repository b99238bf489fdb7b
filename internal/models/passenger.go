package models

import (
	"time"
)

// Passenger is read-only from the back-office point of view.
type Passenger struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	RideCount int       `json:"ride_count"`
	CreatedAt time.Time `json:"created_at"`
}
