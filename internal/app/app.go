package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/auth"
	"github.com/Lixetron/job-portal/internal/config"
	"github.com/Lixetron/job-portal/internal/database"
	"github.com/Lixetron/job-portal/internal/handlers"
	"github.com/Lixetron/job-portal/internal/logger"
	"github.com/Lixetron/job-portal/internal/middleware"
	"github.com/Lixetron/job-portal/internal/routes"
	"github.com/Lixetron/job-portal/internal/services"
	"github.com/Lixetron/job-portal/internal/storage"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := services.NewServiceContainer()

	appHandlers := handlers.NewAppHandlers(
		serviceContainer,
		storageInstance,
		cfg.Upload.MaxSize,
		authRateLimiter(cfg),
	)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// authRateLimiter builds the redis-backed limiter for the auth endpoints;
// returns nil (disabled) when no redis address is configured.
func authRateLimiter(cfg *config.Config) gin.HandlerFunc {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	logger.Info("Rate limiter enabled", "redis", cfg.Redis.Addr)

	window := time.Duration(cfg.RateLimit.WindowS) * time.Second
	return middleware.RateLimitMiddleware(rdb, cfg.RateLimit.Requests, window)
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
