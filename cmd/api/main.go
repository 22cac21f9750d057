package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/event-scheduler/internal/audit"
	"github.com/BruksfildServices01/event-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/event-scheduler/internal/db"
	"github.com/BruksfildServices01/event-scheduler/internal/lock"
	"github.com/BruksfildServices01/event-scheduler/internal/logger"
	"github.com/BruksfildServices01/event-scheduler/internal/middleware"
	"github.com/BruksfildServices01/event-scheduler/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync()

	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}

	// ------------------------------
	// Trava de agendamento
	// ------------------------------
	var locker lock.Locker = lock.NewLocalLocker(cfg.BookingLockWait)
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			zlog.Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()

		locker = lock.NewRedisLocker(client, cfg.BookingLockTTL, cfg.BookingLockWait, zlog)
		zlog.Info("using redis booking lock")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), cfg.AuditQueueSize, zlog)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(zlog), middleware.Recovery(zlog))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    zlog,
		Locker: locker,
		Audit:  auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}

	// esvazia a fila de auditoria antes de sair
	auditDispatcher.Close()
}
