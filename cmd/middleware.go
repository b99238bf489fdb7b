package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.errorLog.Printf("panic: %s", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("%s", err)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireSession guards every data route. A valid Bearer access token is
// enough; an expired one can be renewed through the stored refresh session,
// in which case the fresh access token travels back in the response header.
func (app *application) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			claims, err := app.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
			if err == nil {
				ctx := context.WithValue(r.Context(), "admin_id", claims.AdminID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		refreshToken := r.Header.Get("Refresh-Token")
		if refreshToken == "" {
			noSession(w)
			return
		}

		session, err := app.adminRepo.GetSessionByToken(r.Context(), refreshToken)
		if err != nil {
			noSession(w)
			return
		}
		if session.ExpiresAt.Before(time.Now()) {
			noSession(w)
			return
		}

		newAccessToken, err := app.tokens.NewJWT(session.AdminID, "", app.accessTTL)
		if err != nil {
			app.errorLog.Printf("cannot renew access token: %v", err)
			noSession(w)
			return
		}
		w.Header().Set("Authorization", "Bearer "+newAccessToken)

		ctx := context.WithValue(r.Context(), "admin_id", session.AdminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func noSession(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "No existe sesión"})
}
