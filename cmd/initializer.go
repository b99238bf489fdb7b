package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"rodaBack/internal/cache"
	"rodaBack/internal/config"
	"rodaBack/internal/handlers"
	"rodaBack/internal/notify"
	"rodaBack/internal/repositories"
	"rodaBack/internal/services"
	"rodaBack/internal/storage"
	"rodaBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	tokens    *utils.Manager
	accessTTL time.Duration
	adminRepo *repositories.AdminRepository

	authHandler      *handlers.AuthHandler
	driverHandler    *handlers.DriverHandler
	passengerHandler *handlers.PassengerHandler
	rideHandler      *handlers.RideHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	driverRepo := repositories.DriverRepository{DB: db}
	passengerRepo := repositories.PassengerRepository{DB: db}
	rideRepo := repositories.RideRepository{DB: db}
	adminRepo := repositories.AdminRepository{DB: db}

	// Infrastructure
	listingCache := cache.NewListingCache(rdb, 30*time.Second)
	gateway := storage.NewGateway(storage.Config{
		Region:          cfg.Storage.Region,
		Endpoint:        cfg.Storage.Endpoint,
		AccessKey:       cfg.Storage.AccessKey,
		SecretKey:       cfg.Storage.SecretKey,
		DocumentsBucket: cfg.Storage.DocumentsBucket,
		AvatarsBucket:   cfg.Storage.AvatarsBucket,
		AvatarsPublic:   cfg.Storage.AvatarsPublic,
	})
	notifier := notify.NewNotifier(fcmClient, db)

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}
	accessTTL := time.Duration(cfg.Auth.AccessTTLHours) * time.Hour
	if accessTTL <= 0 {
		accessTTL = 20 * time.Hour
	}
	refreshTTL := time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}

	// Services
	driverService := &services.DriverService{Drivers: &driverRepo, Cache: listingCache, Observer: notifier}
	rideService := &services.RideService{Rides: &rideRepo}
	passengerService := &services.PassengerService{PassengerRepo: &passengerRepo}
	authService := &services.AuthService{AdminRepo: &adminRepo, Tokens: tokens, AccessTTL: accessTTL, RefreshTTL: refreshTTL}

	// Handlers
	authHandler := &handlers.AuthHandler{Service: authService}
	driverHandler := &handlers.DriverHandler{Service: driverService, Rides: rideService, Documents: gateway}
	passengerHandler := &handlers.PassengerHandler{Service: passengerService, Rides: rideService}
	rideHandler := &handlers.RideHandler{Service: rideService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		db:               db,
		tokens:           tokens,
		accessTTL:        accessTTL,
		adminRepo:        &adminRepo,
		authHandler:      authHandler,
		driverHandler:    driverHandler,
		passengerHandler: passengerHandler,
		rideHandler:      rideHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
