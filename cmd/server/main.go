package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auditapp "github.com/beerworks/backend/internal/application/audit"
	beerapp "github.com/beerworks/backend/internal/application/beer"
	customerapp "github.com/beerworks/backend/internal/application/customer"
	orderapp "github.com/beerworks/backend/internal/application/order"
	"github.com/beerworks/backend/internal/infrastructure/async"
	"github.com/beerworks/backend/internal/infrastructure/auth"
	"github.com/beerworks/backend/internal/infrastructure/cache"
	"github.com/beerworks/backend/internal/infrastructure/config"
	"github.com/beerworks/backend/internal/infrastructure/event"
	"github.com/beerworks/backend/internal/infrastructure/logger"
	"github.com/beerworks/backend/internal/infrastructure/persistence"
	"github.com/beerworks/backend/internal/interfaces/http/handler"
	"github.com/beerworks/backend/internal/interfaces/http/middleware"
	"github.com/beerworks/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting beer backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Shared worker pool drives both the async facade and event dispatch
	pool := async.NewPool(cfg.Worker.Count, cfg.Worker.QueueSize, log)

	bus := event.NewAsyncEventBus(pool, log)
	if err := bus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Repositories
	beerRepo := persistence.NewGormBeerRepository(db.DB)
	auditRepo := persistence.NewGormBeerAuditRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormBeerOrderRepository(db.DB)

	// The audit trail listens on every beer event
	bus.Subscribe(auditapp.NewBeerAuditHandler(auditRepo, log))

	// List cache backend per configuration
	listCache := cache.NewListCacheFactory(
		cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		cfg.Cache.TTL,
		cache.WithFactoryLogger(log),
	).Create(cache.Backend(cfg.Cache.Backend))

	// Application services
	beerService := beerapp.NewService(beerRepo, listCache, bus, log)
	bulkService := beerapp.NewBulkService(beerRepo, listCache, bus, log)
	asyncBeers := beerapp.NewAsyncService(beerService, bulkService, pool)
	aggregation := beerapp.NewAggregationService(asyncBeers)
	customerService := customerapp.NewService(customerRepo, bus, log)
	orderService := orderapp.NewService(orderRepo, beerRepo, customerRepo, bus, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsCfg),
	)

	// Routes: the whole API group resolves the caller's principal from a
	// Bearer token when one is present
	validator := auth.NewTokenValidator(cfg.JWT)
	systemHandler := handler.NewSystemHandler(db)
	router.NewRouter(engine, router.WithMiddleware(middleware.Authentication(validator))).
		Register(handler.NewBeerHandler(asyncBeers, aggregation, auditRepo,
			handler.WithBulkChunkSize(cfg.Import.ChunkSize))).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(systemHandler).
		Setup()

	// Root-level health endpoint for load balancers
	engine.GET("/health", systemHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown: stop accepting requests, then drain the event bus
	// and worker pool so in-flight audits land before the process exits
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := bus.Stop(ctx); err != nil {
		log.Error("Event bus shutdown failed", zap.Error(err))
	}
	if err := pool.Stop(ctx); err != nil {
		log.Error("Worker pool shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
