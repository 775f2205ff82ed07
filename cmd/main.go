package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "battery_dashboard/docs"
	"battery_dashboard/internal/config"
	"battery_dashboard/internal/handlers"
	"battery_dashboard/internal/logger"
	"battery_dashboard/internal/notify"
	"battery_dashboard/internal/predictor"
	"battery_dashboard/internal/repository"
	"battery_dashboard/internal/repository/db"
	"battery_dashboard/internal/server"
	"battery_dashboard/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Battery RUL Dashboard API
// @version      1.0
// @description  Two-step battery remaining-useful-life wizard backed by a remote prediction service.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml (or ./config.yml) plus env overrides
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	if cfg.Auth.SigningKey == "" {
		log.Fatalw("auth.signing_key is empty; set it in config.yml or AUTH_SIGNING_KEY")
	}

	// open DB
	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// notification sinks: websocket hub, log, external forwarders
	hub := notify.NewHub()
	forwarder := notify.NewForwarder(cfg.Notify.ShoutrrrURLs, nil, log)
	notifier := notify.Multi{hub, notify.NewLog(log), forwarder}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Deps{
		Client:        newPredictor(cfg, log),
		Notifier:      notifier,
		Notifications: hub,
		Logger:        log,
		Config:        cfg,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
	forwarder.Wait()
}

// newPredictor picks the offline demo client or the HTTP one; demo mode is never a fallback.
func newPredictor(cfg *config.Config, log *logger.Logger) predictor.Client {
	if cfg.Predictor.DemoMode {
		log.Warnw("predictor demo mode enabled; results are synthetic")
		return predictor.DemoClient{}
	}
	if cfg.Predictor.URLSource == "default" {
		log.Warnw("prediction API URL not configured; using default",
			"env", config.EnvPredictionAPIURL, "base_url", cfg.Predictor.BaseURL)
	} else {
		log.Infow("prediction API URL", "base_url", cfg.Predictor.BaseURL, "source", cfg.Predictor.URLSource)
	}
	return predictor.NewHTTPClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		log.Errorw("server forced to shutdown", "err", err)
	}
}
