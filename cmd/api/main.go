package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Curadi/SPNotification/docs"
	"github.com/Curadi/SPNotification/internal/broadcast"
	"github.com/Curadi/SPNotification/internal/config"
	"github.com/Curadi/SPNotification/internal/database"
	"github.com/Curadi/SPNotification/internal/logging"
	"github.com/Curadi/SPNotification/internal/notification"
)

// @title           SPNotification API
// @version         1.0
// @description     Notification management API with real-time broadcast of new notifications.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.LogFile)

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to apply database schema: %v", err)
	}

	logger.Info("Connected to database successfully")

	// Broadcast hub for live subscribers
	broadcaster := broadcast.NewBroadcaster(cfg.BroadcastBuffer)
	defer broadcaster.Close()

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo, broadcaster, logger)
	notificationHandler := notification.NewHandler(notificationService, cfg.MaxPageSize, logger)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/notifications", notificationHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logger.Infof("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
