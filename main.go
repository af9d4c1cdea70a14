package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/college-site/auth"
	"github.com/danielhkuo/college-site/cliparse"
	"github.com/danielhkuo/college-site/cors"
	"github.com/danielhkuo/college-site/db"
	"github.com/danielhkuo/college-site/mail"
	"github.com/danielhkuo/college-site/metrics"
	"github.com/danielhkuo/college-site/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Utility mode: print a digest for ADMIN_PASSWORD_HASH
	if cfg.HashPassword != "" {
		digest, err := auth.BcryptHasher{}.Hash(cfg.HashPassword)
		if err != nil {
			slog.Error("hashing failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(digest)
		return
	}

	if cfg.LogFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	// Build the origin filter first; a bad allow-list must stop startup
	filter, err := cors.NewFilter(cors.Policy{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           10 * time.Minute,
	}, cors.WithObserver(func(d cors.Decision) {
		metrics.ObserveOrigin(d.Allowed, d.Reason)
	}))
	if err != nil {
		slog.Error("invalid CORS configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("CORS allow-list loaded", "origins", cfg.AllowedOrigins, "credentials", cfg.AllowCredentials)

	// Connect to the database and counter backend
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	backend, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType, "counter_backend", counterBackendName(cfg))

	notifier, err := mail.New(cfg)
	if err != nil {
		slog.Error("mail setup failed", "error", err)
		os.Exit(1)
	}
	if smtp, ok := notifier.(*mail.SMTPNotifier); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		if err := smtp.Verify(ctx); err != nil {
			// Submissions are still stored; only notifications are affected
			slog.Error("mail server not reachable", "host", cfg.SMTPHost, "error", err)
		} else {
			slog.Info("mail server ready", "host", cfg.SMTPHost)
		}
		cancel()
	}

	// Create router
	mux := router.NewRouter(backend.Records, metrics.WrapCounter(backend.Counters), notifier, cfg)

	// Create server
	server := http.Server{
		Handler:           filter.Handler(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return
	}
	<-drained
	slog.Info("Server closed")
}

func counterBackendName(cfg cliparse.Config) string {
	if cfg.CounterBackend == "" {
		return cfg.DatabaseType
	}
	return cfg.CounterBackend
}
