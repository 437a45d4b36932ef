package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/finance-flow/internal/config"
	"github.com/MKhiriev/finance-flow/internal/handler"
	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/metrics"
	"github.com/MKhiriev/finance-flow/internal/ratelimit"
	"github.com/MKhiriev/finance-flow/internal/server"
	"github.com/MKhiriev/finance-flow/internal/service"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/internal/workers"
	"github.com/MKhiriev/finance-flow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("finance-flow-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("cors_origin", cfg.CORS.Origin).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var background []workers.Worker
	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddress})
		defer client.Close()
		limiter = ratelimit.NewRedisRateLimiter(client, "")
		log.Info().Str("address", cfg.RateLimit.RedisAddress).Msg("login rate limit counters are kept in redis")
	} else {
		memory := ratelimit.NewMemoryRateLimiter()
		limiter = memory
		background = append(background, workers.NewPeriodicWorker("rate-limit-cleanup", cfg.RateLimit.Window, func(context.Context) {
			memory.Cleanup()
		}, log))
	}

	build := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	services, err := service.NewServices(storages, limiter, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.New("finance_flow")
	info := services.AppInfoService.GetBuildInfo(ctx)
	m.SetBuildInfo(info.Version, info.Commit, info.Date)

	handlers, err := handler.NewHandlers(services, cfg, m, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(background...).Run(ctx)

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
