package models

import (
	"time"
)

// Driver verification statuses. Every driver starts out as pending and can
// be moved between the other three states by an operator.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusArchived = "archived"
)

// DriverStatuses lists the closed set of verification states.
var DriverStatuses = []string{StatusPending, StatusAccepted, StatusRejected, StatusArchived}

// ValidDriverStatus reports whether s belongs to the closed status set.
func ValidDriverStatus(s string) bool {
	for _, known := range DriverStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Driver is a registered vehicle operator. The id is the driver's national
// id number (cédula), assigned by the intake flow. Vehicle is nil when the
// driver has not registered a car yet.
type Driver struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Status   string `json:"status"`
	PhotoURL string `json:"photo_url"`

	IDPhotoURLFront      string  `json:"id_photo_url_front"`
	IDPhotoURLBack       string  `json:"id_photo_url_back"`
	LicensePhotoURLFront string  `json:"license_photo_url_front"`
	LicensePhotoURLBack  string  `json:"license_photo_url_back"`
	ContractURL          *string `json:"contract_url"`
	NotaryPowerURL       *string `json:"notary_power_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicle *Vehicle `json:"vehicles"`
}

// Vehicle is the single car record owned by a driver.
type Vehicle struct {
	LicensePlate       string `json:"license_plate"`
	Brand              string `json:"brand"`
	Line               string `json:"line"`
	Model              string `json:"model"`
	EngineDisplacement string `json:"engine_displacement"`
	Color              string `json:"color"`
	Type               string `json:"type"`

	PropertyCardPhotoURLFront string `json:"property_card_photo_url_front"`
	PropertyCardPhotoURLBack  string `json:"property_card_photo_url_back"`
	OwnerID                   string `json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
}
