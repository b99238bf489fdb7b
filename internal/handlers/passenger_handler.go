package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rodaBack/internal/models"
	"rodaBack/internal/services"
)

type PassengerHandler struct {
	Service *services.PassengerService
	Rides   *services.RideService
}

func (h *PassengerHandler) ListPassengers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	passengers, total, err := h.Service.ListPassengers(r.Context(), page, pageSize)
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"passengers": passengers,
		"total":      total,
	})
}

func (h *PassengerHandler) GetPassengerByID(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")

	passenger, err := h.Service.GetPassengerByID(r.Context(), id)
	if errors.Is(err, models.ErrNoRecord) {
		errorJSON(w, http.StatusNotFound, "passenger not found")
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(passenger)
}

func (h *PassengerHandler) PassengerRideHistory(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")

	history, err := h.Rides.HistoryFor(r.Context(), services.EntityPassenger, id)
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(history)
}
