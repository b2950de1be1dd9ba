package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/bloghive/backend/internal/handlers"
	"github.com/bloghive/backend/internal/repositories"
	"github.com/bloghive/backend/internal/router"
	"github.com/bloghive/backend/pkg/config"
	"github.com/bloghive/backend/pkg/firebase"
	"github.com/bloghive/backend/pkg/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Storage backend. The in-memory store exists for development and
	// tests; everything else runs on PostgreSQL.
	var store repositories.Store
	switch cfg.Storage {
	case config.StorageMemory:
		store = repositories.NewMemoryStore()
		log.Println("Using in-memory storage; data will not survive a restart.")
	case config.StoragePostgres:
		db, err := config.InitDB(cfg.PostgresConnStr)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.CloseDB()
		router.Migrate(db.Postgres)
		store = repositories.NewPostgresStore(db.Postgres)
	default:
		log.Fatalf("Unknown STORAGE value %q", cfg.Storage)
	}

	// Firebase login is optional; without credentials only local auth
	// is offered.
	var firebaseAuthClient *fbauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	}

	router.SeedAdmin(store, cfg)

	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	router.SetupMiddleware(e)
	router.SetupRoutes(e, store, firebaseAuthClient, cfg)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
