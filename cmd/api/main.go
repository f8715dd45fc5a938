package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohitkatore/project-management/config"
	"github.com/rohitkatore/project-management/internal/bootstrap"
	"github.com/rohitkatore/project-management/internal/catalog/cache"
	"github.com/rohitkatore/project-management/internal/catalog/janitor"
	"github.com/rohitkatore/project-management/internal/catalog/repository"
	"github.com/rohitkatore/project-management/internal/catalog/service"
	"github.com/rohitkatore/project-management/internal/logging"
)

const serviceName = "project-catalog"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config", "error", err)
	}
	logging.Setup(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		logging.Fatal("open database", "error", err)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			slog.Warn("redis unavailable, page cache disabled", "error", err)
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	projectRepo := repository.NewProjectRepo(pool)
	cartRepo := repository.NewCartRepo(pool)

	var pageCache service.PageCache
	if rdb != nil {
		pageCache = cache.NewPageCache(rdb)
	}

	projectSvc := service.NewProjectService(projectRepo, pageCache)
	cartSvc := service.NewCartService(cartRepo, projectRepo)

	if cfg.Janitor.Enabled {
		j, err := janitor.New(cartSvc, cfg.Janitor.Schedule)
		if err != nil {
			logging.Fatal("cart janitor schedule", "schedule", cfg.Janitor.Schedule, "error", err)
		}
		j.Start()
		defer j.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          pool,
		Cache:       rdb,
		Projects:    projectSvc,
		Cart:        cartSvc,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		RateRPS:     cfg.HTTP.RateRPS,
		RateBurst:   cfg.HTTP.RateBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "port", cfg.Server.Port, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("listen", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
