package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "spacex_dashboard/docs"
	"spacex_dashboard/internal/config"
	"spacex_dashboard/internal/handlers"
	"spacex_dashboard/internal/logger"
	"spacex_dashboard/internal/render"
	"spacex_dashboard/internal/repository"
	"spacex_dashboard/internal/server"
	"spacex_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title        SpaceX Launch Records Dashboard API
// @version      1.0
// @description  Launch success charts by site and payload mass.
// @BasePath     /
func main() {
	// load configs/config.yml, .env and SPACEX_* overrides
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	gin.SetMode(cfg.GinMode)

	// load the launch table once; nothing runs without it
	ds := loadDataset(cfg.Dataset.Path, log)

	// wire dependencies
	repos := repository.NewRepository(ds)
	services := service.NewService(repos, service.Options{ScatterSiteFilter: cfg.Charts.ScatterSiteFilter})
	apiHandler := handlers.NewHandler(services, log, render.Size{Width: cfg.Charts.Width, Height: cfg.Charts.Height})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Addr(), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadDataset(path string, log *logger.Logger) *repository.Dataset {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ds, err := repository.LoadDataset(ctx, path)
	if err != nil {
		log.Fatalw("failed to load launch records", "path", path, "err", err)
	}

	sum := ds.Summary()
	log.Infow("launch records loaded",
		"path", path,
		"rows", sum.Rows,
		"class_counts", sum.ClassCounts,
		"sites", sum.Sites,
		"payload_min_kg", sum.PayloadBounds.Low,
		"payload_max_kg", sum.PayloadBounds.High,
	)
	return ds
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, addr string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("dashboard listening", "addr", addr)
		if err := srv.Run(addr, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
