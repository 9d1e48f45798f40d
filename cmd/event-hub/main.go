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
	"github.com/go-chi/chi/v5/middleware"

	"eventhub/internal/actions"
	"eventhub/internal/config"
	"eventhub/internal/http-server/handlers/event/createBooking"
	"eventhub/internal/http-server/handlers/event/getAllEvents"
	"eventhub/internal/http-server/handlers/event/getEvent"
	"eventhub/internal/http-server/handlers/event/getSimilarEvents"
	"eventhub/internal/http-server/handlers/event/upsertEvent"
	"eventhub/internal/http-server/middleware/mwlogger"
	"eventhub/internal/lib/logger/handlers/slogpretty"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/storage/mongodb"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event hub", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	// The store connects lazily: a missing connection string surfaces on
	// the first request that needs the database, not here.
	storage := mongodb.New(cfg.Mongo)

	act := actions.New(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/events", func(r chi.Router) {
		r.Post("/", upsertEvent.New(log, act))
		r.Get("/", getAllEvents.New(log, storage))
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", getEvent.New(log, storage))
			r.Get("/similar", getSimilarEvents.New(log, act))
			r.Post("/book", createBooking.New(log, act))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if storage.IsOpen() {
		if err := storage.Close(shutdownCtx); err != nil {
			log.Error("failed to close mongo connection", sl.Err(err))
		} else {
			log.Info("mongo connection closed")
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
