package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"rodaBack/internal/models"
	"rodaBack/internal/services"
	"rodaBack/internal/storage"
)

type DriverHandler struct {
	Service   *services.DriverService
	Rides     *services.RideService
	Documents *storage.Gateway
}

func (h *DriverHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.StatusPending
	}
	page, pageSize := parsePagination(r)

	drivers, err := h.Service.ListDrivers(r.Context(), status, page, pageSize)
	if errors.Is(err, models.ErrInvalidStatus) {
		errorJSON(w, http.StatusBadRequest, "unknown driver status")
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(drivers)
}

func (h *DriverHandler) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")

	driver, err := h.Service.GetDriver(r.Context(), id)
	if errors.Is(err, models.ErrNoRecord) {
		errorJSON(w, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}

	// The stored key becomes a browsable URL; a broken avatar must not
	// take the whole page down.
	if driver.PhotoURL != "" {
		url, err := h.Documents.AvatarURL(driver.PhotoURL)
		if err != nil {
			log.Printf("Error signing avatar for driver %s: %v", driver.ID, err)
			url = ""
		}
		driver.PhotoURL = url
	}

	resp := struct {
		models.Driver
		AvailableTransitions []string `json:"available_transitions"`
	}{driver, services.AvailableTransitions(driver.Status)}
	json.NewEncoder(w).Encode(resp)
}

// GetDriverDocuments mints short-lived links for every document the driver
// uploaded, keyed by slot name.
func (h *DriverHandler) GetDriverDocuments(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")

	driver, err := h.Service.GetDriver(r.Context(), id)
	if errors.Is(err, models.ErrNoRecord) {
		errorJSON(w, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}

	json.NewEncoder(w).Encode(h.Documents.DriverDocuments(driver))
}

func (h *DriverHandler) ProcessDriver(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	status := r.URL.Query().Get("status")

	err := h.Service.ProcessDriver(r.Context(), id, status)
	switch {
	case errors.Is(err, models.ErrInvalidStatus):
		errorJSON(w, http.StatusBadRequest, "unknown driver status")
	case errors.Is(err, models.ErrNoRecord):
		errorJSON(w, http.StatusNotFound, "driver not found")
	case errors.Is(err, models.ErrMissingDocuments):
		errorJSON(w, http.StatusConflict, "driver documents incomplete")
	case err != nil:
		serverError(w, err)
	default:
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Actualizado"})
	}
}

func (h *DriverHandler) DriverRideHistory(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")

	history, err := h.Rides.HistoryFor(r.Context(), services.EntityDriver, id)
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(history)
}
