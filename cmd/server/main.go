package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitfantasy/nimo-scm/internal/config"
	financeentity "github.com/bitfantasy/nimo-scm/internal/finance/entity"
	financehandler "github.com/bitfantasy/nimo-scm/internal/finance/handler"
	financerepo "github.com/bitfantasy/nimo-scm/internal/finance/repository"
	financesvc "github.com/bitfantasy/nimo-scm/internal/finance/service"
	"github.com/bitfantasy/nimo-scm/internal/middleware"
	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"github.com/bitfantasy/nimo-scm/internal/scm/handler"
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting nimo-scm service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate scm tables", zap.Error(err))
	}
	if err := financeentity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate finance tables", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, rdb)
	handlers := handler.NewHandlers(services)

	revenueRepo := financerepo.NewRevenueRepository(db)
	revenueSvc := financesvc.NewRevenueService(revenueRepo)
	revenueHandler := financehandler.NewRevenueHandler(revenueSvc)

	if cfg.Finance.DatasetPath != "" {
		summary, err := revenueSvc.SeedFromFile(cfg.Finance.DatasetPath)
		if err != nil {
			zapLogger.Warn("Failed to seed revenue dataset", zap.Error(err))
		} else if summary.Imported > 0 {
			zapLogger.Info("Seeded revenue dataset",
				zap.String("path", cfg.Finance.DatasetPath),
				zap.Int("imported", summary.Imported),
				zap.Int("skipped", summary.Skipped),
			)
		}
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, revenueHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, revenue *financehandler.RevenueHandler) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("", h.Supplier.List)
			suppliers.POST("", h.Supplier.Create)
			suppliers.GET("/:id", h.Supplier.Get)
			suppliers.PUT("/:id", h.Supplier.Update)
		}

		products := v1.Group("/products")
		{
			products.GET("", h.Product.List)
			products.POST("", h.Product.Create)
			products.GET("/by-sku/:sku", h.Product.GetBySKU)
			products.GET("/:id", h.Product.Get)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", h.Inventory.List)
			inventory.GET("/low-stock", h.Inventory.LowStock)
			inventory.POST("/adjust", h.Inventory.Adjust)
		}

		pos := v1.Group("/purchase-orders")
		{
			pos.GET("", h.PO.List)
			pos.POST("", h.PO.Create)
			pos.POST("/receive", h.PO.Receive)
			pos.GET("/:id", h.PO.Get)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/overview", h.Dashboard.Overview)
			dashboard.GET("/recent-orders", h.Dashboard.RecentOrders)
		}

		finance := v1.Group("/finance/revenue")
		{
			finance.POST("", revenue.Upsert)
			finance.POST("/import", revenue.Import)
			finance.GET("/summary", revenue.Summary)
			finance.GET("/series", revenue.Series)
			finance.GET("/export", revenue.Export)
		}
	}
}
