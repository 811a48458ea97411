// main is the entry point of the student management API.
//
// Startup sequence: load config, initialise the logger, open the
// SQLite store, register routes and middleware, start the HTTP server
// in a goroutine, then block until an OS signal triggers a graceful
// shutdown.
//
// Running the server:
//
//	go run ./cmd/student-api --config=config/local.yaml
//
// or with the environment variable:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"student-management-api/internal/config"
	"student-management-api/internal/http/handlers/student"
	"student-management-api/internal/http/handlers/system"
	"student-management-api/internal/http/middleware"
	"student-management-api/internal/metrics"
	"student-management-api/internal/storage/sqlite"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// The store is held behind the storage.Storage interface from here
	// on; swapping the backend only touches this block.
	db, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	m := metrics.New(prometheus.DefaultRegisterer)
	store := metrics.InstrumentStorage(db, m)

	// Route table. {$} pins patterns to the exact path, so
	// "POST /students/" does not also match "POST /students/anything".
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}",
		m.InstrumentHandler("GET", "/", system.Root()))
	router.HandleFunc("GET /health",
		m.InstrumentHandler("GET", "/health", system.Health(store)))
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("POST /students/{$}",
		m.InstrumentHandler("POST", "/students/", student.New(store)))
	router.HandleFunc("GET /students/{$}",
		m.InstrumentHandler("GET", "/students/", student.GetList(store)))
	router.HandleFunc("GET /students/{id}",
		m.InstrumentHandler("GET", "/students/{id}", student.GetByID(store)))
	router.HandleFunc("PUT /students/{id}",
		m.InstrumentHandler("PUT", "/students/{id}", student.Update(store)))
	router.HandleFunc("DELETE /students/{id}",
		m.InstrumentHandler("DELETE", "/students/{id}", student.Delete(store)))

	// RequestID runs outermost so the logger and recovery both see
	// the id; Recover runs innermost so a panicking handler still
	// produces a logged 500.
	handler := middleware.Chain(router,
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recover(log),
	)

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger for the given environment:
// human-readable text at DEBUG in dev, JSON at INFO in prod, JSON at
// DEBUG in staging.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
