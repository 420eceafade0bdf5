package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	authHandlers "github.com/burcum/burcum-api/internal/auth/handlers"
	"github.com/burcum/burcum-api/internal/auth/repository"
	authServices "github.com/burcum/burcum-api/internal/auth/services"
	"github.com/burcum/burcum-api/internal/common/cache"
	"github.com/burcum/burcum-api/internal/common/database"
	commonHandlers "github.com/burcum/burcum-api/internal/common/handlers"
	"github.com/burcum/burcum-api/internal/common/health"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/common/middleware"
	"github.com/burcum/burcum-api/internal/common/ratelimit"
	compatibilityHandlers "github.com/burcum/burcum-api/internal/compatibility/handlers"
	compatibilityServices "github.com/burcum/burcum-api/internal/compatibility/services"
	horoscopeHandlers "github.com/burcum/burcum-api/internal/horoscope/handlers"
	horoscopeServices "github.com/burcum/burcum-api/internal/horoscope/services"
	zodiacHandlers "github.com/burcum/burcum-api/internal/zodiac/handlers"
	"github.com/burcum/burcum-api/pkg/config"
	"github.com/burcum/burcum-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Messages.Path != "" {
		if err := messages.LoadOverrides(cfg.Messages.Path); err != nil {
			log.Fatalf("Failed to load message overrides: %v", err)
		}
	}

	// Pick the store backend once; everything downstream sees the
	// Store interface.
	var (
		store  repository.Store
		gormDB *gorm.DB
	)
	switch cfg.Database.Type {
	case "memory":
		store = repository.NewMemoryStore()
	default:
		gormDB, err = database.Open(cfg.Database.Type, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer database.Close(gormDB)

		gormStore := repository.NewGormStore(gormDB)
		if err := gormStore.Migrate(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		store = gormStore
	}

	requestLimiter := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	loginLimiter := ratelimit.NewLogin(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginBlockFor)

	authService := authServices.NewService(store, loginLimiter, cfg.Session.MaxAge)
	compatibilityCache := cache.New(cfg.Cache.MaxEntries)
	compatibilityService := compatibilityServices.NewService(compatibilityCache)
	horoscopeService := horoscopeServices.NewService(horoscopeServices.NewTemplateGenerator(), cfg.Cache.MaxEntries)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SessionUser(authService))

	healthChecker := health.NewHealthChecker(gormDB, cfg.Database.Type, version)
	healthChecker.RegisterStats("compatibility_cache", func() interface{} {
		return compatibilityCache.Stats()
	})
	healthChecker.RegisterStats("horoscope_caches", func() interface{} {
		return horoscopeService.CacheStats()
	})
	healthChecker.RegisterStats("rate_limiters", func() interface{} {
		return map[string]int{
			"request_clients": requestLimiter.Size(),
			"login_clients":   loginLimiter.Size(),
		}
	})

	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)

	authHandler := authHandlers.NewHandler(authService)
	compatibilityHandler := compatibilityHandlers.NewHandler(compatibilityService)
	horoscopeHandler := horoscopeHandlers.NewHandler(horoscopeService, authService)
	zodiacHandler := zodiacHandlers.NewHandler()

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/verify-email", authHandler.VerifyEmail)
			authGroup.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		zodiacGroup := v1.Group("/zodiac")
		{
			zodiacGroup.GET("/signs", zodiacHandler.ListSigns)
			zodiacGroup.GET("/signs/:sign", zodiacHandler.GetSign)
			zodiacGroup.GET("/sign-for-date", zodiacHandler.SignForDate)
		}

		limited := v1.Group("")
		limited.Use(middleware.RateLimit(requestLimiter))
		{
			limited.GET("/horoscope/:period/:sign", horoscopeHandler.Get)
			limited.POST("/compatibility", compatibilityHandler.Analyze)
		}
	}

	// Periodic maintenance: expired sessions and stale limiter windows.
	maintenanceCtx, stopMaintenance := context.WithCancel(context.Background())
	defer stopMaintenance()
	go runMaintenance(maintenanceCtx, authService, requestLimiter)

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server",
			zap.String("address", address),
			zap.String("db_type", cfg.Database.Type),
			zap.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func runMaintenance(ctx context.Context, authService *authServices.Service, limiter *ratelimit.Limiter) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed, err := authService.CleanupExpiredSessions(); err != nil {
				logger.Warn("session cleanup failed", zap.Error(err))
			} else if removed > 0 {
				logger.Info("expired sessions removed", zap.Int64("count", removed))
			}
			limiter.Cleanup(time.Hour)
		}
	}
}
