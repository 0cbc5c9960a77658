package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/medibook/medibook-api/internal/config"
	"github.com/medibook/medibook-api/internal/handlers"
	"github.com/medibook/medibook-api/internal/middleware"
	"github.com/medibook/medibook-api/internal/models"
	"github.com/medibook/medibook-api/internal/services"
	"github.com/medibook/medibook-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	if cfg.AuthMode == config.AuthModeBypass {
		logger.Warn("AUTH_MODE=bypass: all requests run as a fixed admin principal")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	// --- Services and Handlers ---
	st := store.NewMongo(db)
	metricsSvc := services.NewMetricsService()
	h := handlers.NewHandler(st, st, st, metricsSvc, logger)

	// --- Gin Router ---
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
	}

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.Auth(cfg.AuthMode))
	{
		apiRoutes.GET("/doctors", h.SearchDoctors)

		patientRoutes := apiRoutes.Group("/bookings")
		patientRoutes.Use(middleware.RequireRole(models.RolePatient))
		{
			patientRoutes.POST("", h.CreateBooking)
			patientRoutes.GET("", h.MyBookings)
		}

		adminRoutes := apiRoutes.Group("/admin")
		adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminRoutes.GET("/doctors", h.ListDoctors)
			adminRoutes.GET("/doctors/specialties", h.ListSpecialties)
			adminRoutes.GET("/doctors/:id", h.GetDoctor)
			adminRoutes.PUT("/doctors/:id", h.UpdateDoctor)
			adminRoutes.PATCH("/doctors/:id/approval", h.ToggleApproval)
			adminRoutes.PATCH("/doctors/:id/credentials", h.UpdateCredentials)

			adminRoutes.GET("/bookings", h.ListBookings)
			adminRoutes.PATCH("/bookings/status", h.BulkUpdateBookingStatus)

			adminRoutes.GET("/metrics", h.GetMetrics)
		}
	}

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
