package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nhl-query-service/internal/config"
	"github.com/preston-bernstein/nhl-query-service/internal/logging"
	"github.com/preston-bernstein/nhl-query-service/internal/metrics"
	"github.com/preston-bernstein/nhl-query-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotEnvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: metrics.DefaultServiceName,
		Version: appVersion,
	})
	if dotEnvErr != nil {
		logger.Warn("failed to load .env", slog.Any("err", dotEnvErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
