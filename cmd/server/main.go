package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"brasilnasteam/backend/internal/cache"
	"brasilnasteam/backend/internal/config"
	"brasilnasteam/backend/internal/database"
	"brasilnasteam/backend/internal/handler"
	"brasilnasteam/backend/internal/logging"
	"brasilnasteam/backend/internal/metric"
	"brasilnasteam/backend/internal/middleware"
	"brasilnasteam/backend/internal/stats"

	// Swagger imports
	_ "brasilnasteam/backend/docs" // swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// @title           Brasil Na Steam API
// @version         1.0
// @description     Statistics about Brazilian games on Steam.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server_exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	sqlxDB, err := database.SQLX(db)
	if err != nil {
		return err
	}

	var responseCache stats.Cache
	if cfg.CacheEnabled() {
		c, err := cache.New(cache.Config{
			Addr:     cfg.CacheAddr,
			Password: cfg.CachePassword,
			DB:       cfg.CacheDB,
			TTL:      cfg.CacheTTL,
			Prefix:   cfg.CachePrefix,
		}, logger)
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.Ping(ctx); err != nil {
			logger.Warn("cache_unavailable", slog.Any("err", err))
		}
		responseCache = c
	}

	svc := stats.NewService(db, sqlxDB, stats.Options{
		Metrics:           metric.DefaultRegistry(),
		ChartGenres:       cfg.ChartGenres,
		MaxPerPage:        cfg.MaxPerPage,
		Cache:             responseCache,
		Logger:            logger,
		WarnUnknownMetric: gin.Mode() != gin.ReleaseMode,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(newCORSConfig(cfg)))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API routes
	handler.New(svc, logger).RegisterRoutes(router.Group("/api"), cfg.JWTSecret)
	if !cfg.AdminEnabled() {
		logger.Warn("admin_routes_disabled", slog.String("reason", "JWT_SECRET is empty"))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started",
			slog.String("addr", srv.Addr),
			slog.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newCORSConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsConfig
}
