// Package main is the entry point for the TripMate API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bhanukaonline/tripmate/internal/calendar"
	"github.com/bhanukaonline/tripmate/internal/config"
	"github.com/bhanukaonline/tripmate/internal/geocode"
	"github.com/bhanukaonline/tripmate/internal/handler"
	"github.com/bhanukaonline/tripmate/internal/media"
	"github.com/bhanukaonline/tripmate/internal/middleware"
	"github.com/bhanukaonline/tripmate/internal/observability"
	"github.com/bhanukaonline/tripmate/internal/reminder"
	"github.com/bhanukaonline/tripmate/internal/repo"
	"github.com/bhanukaonline/tripmate/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// The whole trip collection lives in one JSON file, loaded once at
	// startup. A corrupt file is fatal: starting empty would silently shadow
	// the user's data, and the next save would overwrite it.
	store := repo.NewStore(cfg.DataFile)
	if err := store.Load(); err != nil {
		slog.Error("failed to load trip store", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("trip store loaded", "path", cfg.DataFile)

	images, err := media.NewStore(cfg.MediaDir)
	if err != nil {
		slog.Error("failed to open media store", "dir", cfg.MediaDir, "error", err)
		os.Exit(1)
	}

	// --- Collaborators ----------------------------------------------------
	scheduler := reminder.NewMemoryScheduler()
	renderer := calendar.NewRenderer()
	geo := geocode.New(cfg.GeocodeBaseURL)

	tripSvc := service.NewTripService(store, scheduler, images, renderer)
	itinSvc := service.NewItineraryService(store, geo)
	exportSvc := service.NewExportService(store)

	// Reminders are in-memory, so rebuild them for every stored trip.
	trips, err := store.List(context.Background())
	if err != nil {
		slog.Error("failed to list trips for reminder rebuild", "error", err)
		os.Exit(1)
	}
	for _, trip := range trips {
		if err := scheduler.Schedule(context.Background(), trip); err != nil {
			slog.Warn("failed to schedule reminders", "trip_id", trip.ID, "error", err)
		}
	}
	observability.StoreTrips.Set(float64(len(trips)))

	// --- Metrics ----------------------------------------------------------
	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMetrics())
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(tripSvc, itinSvc, exportSvc, geo, images).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
