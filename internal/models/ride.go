package models

import (
	"time"
)

// Ride statuses seen in the history projection.
const (
	RideCompleted = "completed"
	RideCanceled  = "canceled"
	RideIgnored   = "ignored"
)

// RideSummary is the compact row shown on the rides listing.
type RideSummary struct {
	ID          int64      `json:"id"`
	RequestTime time.Time  `json:"request_time"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status"`
}

// RideParty carries the denormalized display fields of a ride participant.
// Vehicle is only populated for drivers.
type RideParty struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Vehicle *Vehicle `json:"vehicles,omitempty"`
}

// RideHistory is an immutable projection of a past trip. Rides reference
// drivers and passengers by id only, so both parties may be nil when the
// query does not join them.
type RideHistory struct {
	ID             int64      `json:"id"`
	PickupLocation string     `json:"pickup_location"`
	Destination    string     `json:"destination"`
	FinalPrice     float64    `json:"final_price"`
	Comments       *string    `json:"comments,omitempty"`
	RequestTime    time.Time  `json:"request_time"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Gender         string     `json:"gender"`
	AffiliateID    *string    `json:"affiliate_id"`
	Status         string     `json:"status"`

	Passenger *RideParty `json:"passengers,omitempty"`
	Driver    *RideParty `json:"drivers,omitempty"`
}
