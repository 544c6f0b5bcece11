package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"notes-api/internal/config"
	"notes-api/internal/logger"
	"notes-api/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	configFile := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	// Загружаем конфигурацию из файла
	appConfig, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load config", "path", *configFile, "err", err)
		return 1
	}

	log, err := logger.New(appConfig.Logger, os.Stderr)
	if err != nil {
		slog.Error("failed to initialize logger", "err", err)
		return 1
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, appConfig, log)
	if err != nil {
		log.Error("failed to initialize server", "err", err)
		return 1
	}

	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	exitCode := 0
	select {
	case err := <-errChan:
		log.Error("server error", "err", err)
		exitCode = 1
	case <-ctx.Done():
		log.Info("received shutdown signal")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("shutdown failed", "err", err)
		exitCode = 1
	}

	log.Info("notes service stopped")
	return exitCode
}
