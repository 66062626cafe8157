package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/remotehub/jobboard-api/internal/api/handler"
	"github.com/remotehub/jobboard-api/internal/api/middleware"
	"github.com/remotehub/jobboard-api/internal/core/service"
	"github.com/remotehub/jobboard-api/internal/infrastructure/config"
	mongostore "github.com/remotehub/jobboard-api/internal/infrastructure/db/mongo"
	redisstore "github.com/remotehub/jobboard-api/internal/infrastructure/db/redis"
	"github.com/remotehub/jobboard-api/internal/infrastructure/jobs"
	"github.com/remotehub/jobboard-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	subRepo := mongostore.NewSubscriptionRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 0)
	userService := service.NewUserService(userRepo, storage.NewLocalStore(cfg.UploadDir), log)
	savedJobsService := service.NewSavedJobsService(userRepo, log)
	subscriptionService := service.NewSubscriptionService(subRepo, log)
	jobsService := service.NewJobsService(jobs.NewClient(cfg.Jobs.FeedURL), redisstore.NewJobsCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	savedJobsHandler := handler.NewSavedJobsHandler(savedJobsService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	jobsHandler := handler.NewJobsHandler(jobsService)
	healthHandler := handler.NewHealthHandler(db)

	sessionGate := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/subscribe", subscriptionHandler.Subscribe)
	e.DELETE("/api/unsubscribe", subscriptionHandler.Unsubscribe)
	e.GET("/api/jobs", jobsHandler.List)
	e.GET("/api/health", healthHandler.Check)

	// --- Protected routes ---
	user := e.Group("/api/user", sessionGate)
	user.GET("/profile", userHandler.Profile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.POST("/resume", userHandler.UploadResume)
	user.POST("/save-job", savedJobsHandler.Save)
	user.DELETE("/saved-jobs/:jobId", savedJobsHandler.Unsave)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
