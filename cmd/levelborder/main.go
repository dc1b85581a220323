package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/shockbase/levelborder/internal/api"
	"github.com/shockbase/levelborder/internal/config"
	"github.com/shockbase/levelborder/internal/factory"
	"github.com/shockbase/levelborder/internal/logging"
)

// Runs the admin API over the plugin's storage. The host server embeds the
// plugin itself through factory.New with a live Host.
func main() {
	configPath := os.Getenv("LEVELBORDER_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("plugins", "LevelBorder", "config.yml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, syncLogs, err := logging.New(cfg.Logging, os.Stdout)
	if err != nil {
		slog.Error("failed to set up logging", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = syncLogs() }()
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(cfg, factory.Host{}, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		PlayerConfigService: app.PlayerConfigService,
		DefaultMinRadius:    cfg.Border.MinRadius,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.API.Host
	serverConfig.Port = cfg.API.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.Storage.Type),
	)

	// Wait for shutdown or error
	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	if err := app.Close(context.Background()); err != nil {
		logger.Error("failed to close application", slog.String("error", err.Error()))
		exitCode = 1
	}

	logger.Info("server stopped")
	_ = syncLogs()
	os.Exit(exitCode)
}
