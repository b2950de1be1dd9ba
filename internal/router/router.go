package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/bloghive/backend/internal/handlers"
	"github.com/bloghive/backend/internal/middleware"
	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/repositories"
	"github.com/bloghive/backend/internal/services"
	"github.com/bloghive/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// Migrate runs the GORM auto-migrations for every persisted model.
func Migrate(pgdb *gorm.DB) {
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
		&models.Report{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")
}

// SeedAdmin ensures an enabled ADMIN account exists. Without one the
// moderation surface would be unreachable on a fresh database.
func SeedAdmin(store repositories.Store, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seeding.")
		return
	}
	if _, err := store.Users().GetByUsername(cfg.AdminUsername); err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Enabled:  true,
	}
	if err := store.Users().Create(admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user %q.", cfg.AdminUsername)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, store repositories.Store, firebaseAuthClient *auth.Client, cfg *config.Config) {
	handlers.RegisterHealthRoutes(e)

	// --- Services ---
	postService := services.NewPostService(store)
	commentService := services.NewCommentService(store)
	interactionService := services.NewInteractionService(store)
	followService := services.NewFollowService(store)
	notificationService := services.NewNotificationService(store)
	moderationService := services.NewModerationService(store)
	userService := services.NewUserService(store)
	enricher := handlers.NewPostEnricher(store)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(store, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(store, cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userService)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(postService, enricher)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(postService, enricher)
	feedHandler.RegisterFeedRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentService, store)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(interactionService)
	likeHandler.RegisterLikeRoutes(api)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	reportHandler := handlers.NewReportHandler(moderationService)
	reportHandler.RegisterReportRoutes(api)

	adminHandler := handlers.NewAdminHandler(moderationService)
	adminHandler.RegisterAdminRoutes(api)

	log.Println("All routes configured.")
}
