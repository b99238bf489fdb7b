package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rodaBack/internal/models"
	"rodaBack/internal/services"
)

type RideHandler struct {
	Service *services.RideService
}

func (h *RideHandler) ListRides(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	rides, total, err := h.Service.ListRides(r.Context(), page, pageSize)
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"rides": rides,
		"total": total,
	})
}

func (h *RideHandler) GetRideByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(getParam(r, "id"), 10, 64)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid ride id")
		return
	}

	ride, err := h.Service.GetRide(r.Context(), id)
	if errors.Is(err, models.ErrNoRecord) {
		errorJSON(w, http.StatusNotFound, "ride not found")
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

// TodayReport counts the rides completed since midnight.
func (h *RideHandler) TodayReport(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.CompletedToday(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{"rides": count})
}
