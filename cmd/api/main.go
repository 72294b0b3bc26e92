package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/smartrecipes/backend/config"
	"github.com/smartrecipes/backend/internal/api"
	"github.com/smartrecipes/backend/internal/database"
	"github.com/smartrecipes/backend/internal/logging"
	"github.com/smartrecipes/backend/internal/middleware"
	"github.com/smartrecipes/backend/internal/nutrition"
	"github.com/smartrecipes/backend/internal/router"
	"github.com/smartrecipes/backend/internal/server"
	"github.com/smartrecipes/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	dataset, err := nutrition.LoadCalorieDataset(cfg.Search.DatasetPath)
	if err != nil {
		logger.Fatal("Failed to load calorie dataset", zap.Error(err))
	}
	logger.Info("Calorie dataset loaded", zap.Int("entries", dataset.Len()))

	// Services
	sessions := service.NewSessionStore(redisClient, cfg.Session.TTL)
	pending := service.NewPendingStore(redisClient, cfg.Auth.PendingTTL)
	emailService := service.NewEmailService(cfg.SMTP)
	client := service.NewSpoonacularClient(cfg.Spoonacular, redisClient, logger)
	searchService := service.NewSearchService(client, sessions, db, cfg.Search, logger)
	authService := service.NewAuthService(db, pending, emailService, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	favoriteService := service.NewFavoriteService(db)

	limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window: cfg.RateLimit.Window,
		Limit:  cfg.RateLimit.Requests,
	})

	engine := router.SetupRouter(cfg, router.Handlers{
		Search:    api.NewSearchHandler(searchService),
		Calories:  api.NewCaloriesHandler(dataset),
		Auth:      api.NewAuthHandler(authService),
		Favorites: api.NewFavoriteHandler(favoriteService),
		Validator: authService,
		Limiter:   limiter,
	})

	srv := server.New(cfg, engine)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
	}

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
