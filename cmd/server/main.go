package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chans00n/myfc-app-sub001/internal/achievements"
	"github.com/chans00n/myfc-app-sub001/internal/config"
	"github.com/chans00n/myfc-app-sub001/internal/database"
	"github.com/chans00n/myfc-app-sub001/internal/handlers"
	"github.com/chans00n/myfc-app-sub001/internal/middleware"
	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/internal/notifications"
	"github.com/chans00n/myfc-app-sub001/internal/routes"
	"github.com/chans00n/myfc-app-sub001/internal/services"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting MyFC Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Build the achievement catalog. A malformed definition is fatal here,
	// never at evaluation time.
	catalog, err := achievements.NewCatalog(achievements.DefaultDefinitions())
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid achievement catalog")
	}

	// 2. Connect Database
	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running Database Migrations...")
	tableModels := []interface{}{
		&models.User{},
		&models.Workout{},
		&models.UserAchievement{},
		&models.Notification{},
		&models.NotificationPreferences{},
	}
	for _, m := range tableModels {
		if err := database.DB.AutoMigrate(m); err != nil {
			logger.Fatal().Err(err).Msgf("Failed to migrate table for %T", m)
		}
	}
	logger.Info().Msg("Database Migrations Complete")

	// 3. Wire the achievement engine and the notification paths
	engine := achievements.NewEngine(catalog, services.ComputeWorkoutStats, notifications.AchievementEarned)
	handlers.InitEngine(engine)
	notifications.Push = handlers.SendNotificationToUser

	if database.Redis != nil {
		// Cross-instance preference fan-out
		notifications.SetBus(notifications.NewRedisBus(database.Redis))
	}

	// 4. Setup Router
	r := gin.Default()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Exempt /socket.io from rate limiting
	r.Use(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 10 && c.Request.URL.Path[:10] == "/socket.io" {
			c.Next()
			return
		}
		middleware.GeneralRateLimit()(c)
	})

	// 5. Register Routes
	api := r.Group("/api")
	{
		routes.RegisterWorkoutRoutes(api)
		routes.RegisterAchievementRoutes(api)
		routes.RegisterNotificationRoutes(api)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "MyFC Backend is running",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	// Init Socket.io
	socketServer := handlers.InitSocketServer()
	defer socketServer.Close()

	r.GET("/socket.io/*any", handlers.SocketHandler(socketServer))
	r.POST("/socket.io/*any", handlers.SocketHandler(socketServer))

	// 6. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
