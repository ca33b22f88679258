package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"syscall"
	"time"

	"github.com/DanielPopoola/mdamascus-theme/internal/config"
	"github.com/oklog/run"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the theme backend",
		Long: `Run the theme backend HTTP server.

Configuration is read from THEME_* environment variables and an optional .env
file, e.g. THEME_STOREFRONT__BASE_URL=https://shop.example.com.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting theme backend",
		"port", cfg.Server.Port,
		"storefront", cfg.Storefront.BaseURL,
		"log_level", cfg.Logger.Level,
	)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      a.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var g run.Group

	g.Add(func() error {
		logger.Info("server starting", "addr", server.Addr)
		return server.ListenAndServe()
	}, func(error) {
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	})

	sweeperCtx, stopSweeper := context.WithCancel(ctx)
	g.Add(func() error {
		a.sweeper.Start(sweeperCtx)
		return nil
	}, func(error) {
		stopSweeper()
	})

	g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	err = g.Run()

	var sigErr run.SignalError
	switch {
	case errors.As(err, &sigErr):
		logger.Info("received signal", "signal", sigErr.Signal.String())
	case errors.Is(err, http.ErrServerClosed), err == nil:
	default:
		return err
	}

	logger.Info("server exited")
	return nil
}
