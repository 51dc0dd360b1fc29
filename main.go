package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/club-lk/internal/club"
	"github.com/mauv0809/club-lk/internal/config"
	"github.com/mauv0809/club-lk/internal/database"
	server "github.com/mauv0809/club-lk/internal/http"
	"github.com/mauv0809/club-lk/internal/metrics"
	"github.com/mauv0809/club-lk/internal/notifier"
	"github.com/mauv0809/club-lk/internal/notifier/slack"
	"github.com/mauv0809/club-lk/internal/processor"
	"github.com/mauv0809/club-lk/internal/pubsub"
	"github.com/mauv0809/club-lk/internal/rating"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	clubStore := club.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var n notifier.Notifier = notifier.LogNotifier{}
	if cfg.Slack.Enabled() {
		n = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Warn("Slack not configured, rating changes are only logged")
	}

	pubsubClient := pubsub.NewLogOnly()
	if cfg.ProjectID != "" {
		pubsubClient, err = pubsub.New(context.Background(), cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	} else {
		log.Warn("GCP_PROJECT not set, pubsub messages are only logged")
	}
	defer pubsubClient.Close()

	engine := rating.New(clubStore, metricsSvc, rating.WithSeasonStart(cfg.Rating.SeasonStart))
	engine.Subscribe(notifier.Listener(n))
	engine.Subscribe(pubsub.RatingsPublisher(pubsubClient))
	log.Info("Rating engine ready", "season_start", cfg.Rating.SeasonStart.Format("2006-01-02"))

	proc := processor.New(engine, clubStore, n, metricsSvc,
		processor.WithDelay(cfg.Rating.Delay),
		processor.WithDebounce(cfg.Rating.Debounce),
	)

	s := server.NewServer(
		clubStore,
		metricsSvc,
		metricsHandler,
		engine,
		proc,
		pubsubClient,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}

		// Players still waiting for the debounce window are recalculated now.
		if entries := proc.Flush(ctx); len(entries) > 0 {
			log.Info("Flushed pending recalculations", "players", len(entries))
		}
		proc.Wait()
	}

	log.Info("Server process shutting down")
}
