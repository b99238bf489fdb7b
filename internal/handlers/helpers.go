package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.URL.Query().Get(name)
}

// errorJSON writes an error body in the shape the dashboard expects.
func errorJSON(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// serverError logs the backend failure verbatim and answers with a generic
// message so store internals never reach the client.
func serverError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)
	errorJSON(w, http.StatusInternalServerError, "internal server error")
}

// parsePagination reads page and pageSize with the dashboard defaults.
func parsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}
	return page, pageSize
}
