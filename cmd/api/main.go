package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/truckerru/backend/internal/pkg/config"
	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/internal/pkg/health"
	"github.com/truckerru/backend/internal/pkg/logger"
	"github.com/truckerru/backend/internal/pkg/middleware"
	"github.com/truckerru/backend/internal/pkg/server"
	"github.com/truckerru/backend/services/trucker/handler"
	httpHandler "github.com/truckerru/backend/services/trucker/handler/http"
	"github.com/truckerru/backend/services/trucker/repository"
	"github.com/truckerru/backend/services/trucker/usecase"
)

func main() {
	appName := "trucker-ru-backend"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize the document store connection. A missing configuration
	// leaves the handle unset: the server still starts and every data
	// endpoint degrades to service-unavailable.
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		zapLogger.Warn("Document store not configured, data endpoints degraded", logger.Err(err))
		mongoClient = nil
	} else {
		defer mongoClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Mongo.Timeout)*time.Second)
		if err := mongoClient.Ping(pingCtx); err != nil {
			zapLogger.Warn("Document store ping failed, continuing anyway", logger.Err(err))
		}
		cancel()
	}

	// Optional Redis client backing the chat rate limiter
	var chatLimiter echo.MiddlewareFunc
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Failed to connect to Redis, rate limiting disabled", logger.Err(err))
		} else {
			defer redisClient.Close()
			chatLimiter = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
				RedisClient: redisClient.GetClient(),
				Key:         "ratelimit",
				Limit:       30,
				Period:      time.Minute,
			})
		}
	}

	// Initialize repository
	truckerRepo := repository.NewTruckerRepo(configs, mongoClient)

	// Initialize usecase
	truckerUC := usecase.NewTruckerUC(configs, truckerRepo)

	// Initialize HTTP handlers
	profileHandler := httpHandler.NewProfileHandler(truckerUC)
	quizHandler := httpHandler.NewQuizHandler(truckerUC)
	cafeHandler := httpHandler.NewCafeHandler(truckerUC)
	contentHandler := httpHandler.NewContentHandler(truckerUC)
	chatHandler := httpHandler.NewChatHandler(truckerUC)
	diagHandler := httpHandler.NewDiagnosticsHandler(truckerUC)

	Handler := handler.NewHandler(profileHandler, quizHandler, cafeHandler, contentHandler, chatHandler, diagHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e, chatLimiter)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
