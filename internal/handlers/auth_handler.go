package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rodaBack/internal/models"
	"rodaBack/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		// The dashboard treats any sign-in failure as a 500 with a message.
		errorJSON(w, http.StatusInternalServerError, "Invalid login credentials")
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}

	json.NewEncoder(w).Encode(resp)
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.SignOut(r.Context(), r.Header.Get("Refresh-Token")); err != nil {
		serverError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Signed out"})
}
