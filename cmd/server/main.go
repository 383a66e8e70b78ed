package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/adapter"
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/handler"
	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/server"
	"github.com/MKhiriev/go-story-nook/internal/service"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/internal/workers"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("go-story-nook-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	clock := utils.SystemClock{}
	adapters := adapter.NewAdapters(cfg.Adapter, clock, log.Component("adapter"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	services, err := service.NewServices(storages, adapters, *cfg, buildInfo, clock, recorder, log.Component("service"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiters := limiter.NewLimiters(cfg.Server.RateLimit, clock)

	handlers, err := handler.NewHandlers(services, limiters, handler.Observability{Recorder: recorder, Gatherer: registry}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(cfg.Workers, services.PasswordResetService, limiters, cfg.Server.RateLimit, clock, log.Component("workers"))

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("version", services.AppInfoService.GetAppVersion(ctx)).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("starting go-story-nook server")

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
