package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sushihentaime/folio/internal/blogservice"
	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
	"github.com/sushihentaime/folio/internal/trainingservice"
)

type application struct {
	config          *Config
	logger          *slog.Logger
	registry        *prometheus.Registry
	metrics         *common.Metrics
	limiter         *rateLimiter
	blogService     *blogservice.BlogService
	trainingService *trainingservice.TrainingService
}

func newApplication(cfg *Config, logger *slog.Logger, store *content.Store, src blogservice.RandomSource) *application {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics := common.NewMetrics(registry)
	cache := common.NewCache(cfg.CacheExpiration, cfg.CacheCleanup).WithMetrics(metrics)

	return &application{
		config:          cfg,
		logger:          logger,
		registry:        registry,
		metrics:         metrics,
		limiter:         newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		blogService:     blogservice.NewBlogService(store, cache, src),
		trainingService: trainingservice.NewTrainingService(store, cache),
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := content.Validate(content.Default); err != nil {
		logger.Error("content failed validation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	blogservice.Seed(seed)

	app := newApplication(cfg, logger, content.Default, nil)
	defer app.limiter.stop()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
