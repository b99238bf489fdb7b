package main

import (
	"encoding/json"
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	sessionMiddleware := standardMiddleware.Append(app.requireSession)

	mux := pat.New()

	// Drivers
	mux.Get("/drivers", sessionMiddleware.ThenFunc(app.driverHandler.ListDrivers))
	mux.Get("/drivers/:id", sessionMiddleware.ThenFunc(app.driverHandler.GetDriverByID))
	mux.Get("/drivers/:id/documents", sessionMiddleware.ThenFunc(app.driverHandler.GetDriverDocuments))
	mux.Get("/drivers/:id/ride-history", sessionMiddleware.ThenFunc(app.driverHandler.DriverRideHistory))
	mux.Post("/drivers/process/:id", sessionMiddleware.ThenFunc(app.driverHandler.ProcessDriver))

	// Passengers
	mux.Get("/passengers", sessionMiddleware.ThenFunc(app.passengerHandler.ListPassengers))
	mux.Get("/passengers/:id", sessionMiddleware.ThenFunc(app.passengerHandler.GetPassengerByID))
	mux.Get("/passengers/:id/ride-history", sessionMiddleware.ThenFunc(app.passengerHandler.PassengerRideHistory))

	// Rides & reports
	mux.Get("/rides", sessionMiddleware.ThenFunc(app.rideHandler.ListRides))
	mux.Get("/rides/:id", sessionMiddleware.ThenFunc(app.rideHandler.GetRideByID))
	mux.Get("/reports/today", sessionMiddleware.ThenFunc(app.rideHandler.TodayReport))

	// Auth
	mux.Post("/auth/sign-in", standardMiddleware.ThenFunc(app.authHandler.SignIn))
	mux.Post("/auth/sign-out", standardMiddleware.ThenFunc(app.authHandler.SignOut))

	// pat answers unregistered verbs with a plain-text 405; the dashboard
	// expects a JSON body, so the other verbs get explicit handlers.
	getOnly := []string{
		"/drivers", "/drivers/:id", "/drivers/:id/documents", "/drivers/:id/ride-history",
		"/passengers", "/passengers/:id", "/passengers/:id/ride-history",
		"/rides", "/rides/:id", "/reports/today",
	}
	for _, pattern := range getOnly {
		mux.Post(pattern, standardMiddleware.ThenFunc(methodNotAllowed))
		mux.Put(pattern, standardMiddleware.ThenFunc(methodNotAllowed))
		mux.Del(pattern, standardMiddleware.ThenFunc(methodNotAllowed))
	}
	postOnly := []string{"/drivers/process/:id", "/auth/sign-in", "/auth/sign-out"}
	for _, pattern := range postOnly {
		mux.Get(pattern, standardMiddleware.ThenFunc(methodNotAllowed))
		mux.Put(pattern, standardMiddleware.ThenFunc(methodNotAllowed))
		mux.Del(pattern, standardMiddleware.ThenFunc(methodNotAllowed))
	}

	return standardMiddleware.Then(mux)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
	json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
}
