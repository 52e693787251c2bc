package main

import (
	"flag"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/fundlift/fundlift/internal/config"
	"github.com/fundlift/fundlift/internal/logger"
	"github.com/fundlift/fundlift/internal/metrics"
	"github.com/fundlift/fundlift/internal/server"
	"github.com/fundlift/fundlift/internal/service"
	"github.com/fundlift/fundlift/internal/session"
	"github.com/fundlift/fundlift/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	catalog := storage.NewMemoryCatalog()
	if cfg.Seed {
		if err := storage.Seed(catalog); err != nil {
			zlog.Fatal("failed to seed catalog", zap.Error(err))
		}
		zlog.Info("catalog seeded", zap.Int("projects", len(catalog.List())))
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	catalogService := service.NewCatalogService(catalog, zlog, m)
	moderationService := service.NewModerationService(catalog, zlog, m)
	donationService := service.NewDonationService(catalog, zlog, m)
	sessions := session.NewRegistry()

	srv := server.New(catalogService, moderationService, donationService, sessions, zlog, prometheus.DefaultGatherer)

	zlog.Info("starting fundlift", zap.String("addr", cfg.ListenAddr))
	if err := srv.Start(cfg.ListenAddr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
