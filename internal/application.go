package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the HTTP API until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var analysisRepo repository.AnalysisRepository

	if conf.Redis.Disabled {
		log.Info("Redis disabled, analysis reports will not be stored")
	} else {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisClient, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		analysisRepo = repository.NewAnalysisRepository(redisClient, conf.Redis.ReportTTL)
	}

	analysisService := service.NewAnalysisService(logger, analysisRepo)
	server := rest.New(logger, analysisService)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
