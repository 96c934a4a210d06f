package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/api"
	"portfolio-site/internal/auth"
	"portfolio-site/internal/config"
	"portfolio-site/internal/content"
	"portfolio-site/internal/database"
	"portfolio-site/internal/notify"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Applies pending migrations, then serves the public and admin API.
When SYNC_INTERVAL is set, repositories are also synchronised periodically.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(config.RequireServer)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg.LogLevel)
	logger.Info("Configuration loaded successfully")

	pool, err := database.Connect(ctx, cfg.DBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("Database connection established")

	if err := runMigrations(cfg); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully")

	store := database.NewStore(pool)
	appSyncer, err := newSyncer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("failed to create syncer: %w", err)
	}

	notifier := notify.New(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		To:       cfg.ContactNotifyTo,
	})
	svc := content.NewService(store, notifier, logger, content.Credentials{
		Username: cfg.AdminDefaultUsername,
		Password: cfg.AdminDefaultPassword,
	})

	sessions, err := auth.NewManager(cfg.JWTSecret, cfg.SessionTTL, cfg.CookieSecure, logger)
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}
	limiter := auth.NewLoginLimiter(cfg.LoginRateInterval, cfg.LoginBurst)

	router := api.NewRouter(svc, appSyncer, sessions, limiter, logger, api.Options{
		SyncOnPageLoad: cfg.SyncOnPageLoad,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		appSyncer.Start(gctx, cfg.SyncInterval)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received. Stopping HTTP server.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return err
	}
	logger.Info("Server stopped")
	return nil
}
