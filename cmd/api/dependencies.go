package api

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/FACorreiaa/terradart-api/internal/domain/citydetail"
	"github.com/FACorreiaa/terradart-api/internal/domain/lookup"
	"github.com/FACorreiaa/terradart-api/internal/upstream"
	"github.com/FACorreiaa/terradart-api/pkg/config"
	"github.com/FACorreiaa/terradart-api/pkg/observability"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry

	// Clients
	CityData *upstream.Client

	// Services
	Metrics       *observability.Metrics
	Orchestrator  *citydetail.Orchestrator
	CityDetailSvc citydetail.Service
	LookupSvc     lookup.Service

	// Handlers
	CityDetailHandler *citydetail.Handler
	LookupHandler     *lookup.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	deps.initClients()
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initClients initializes the city-data upstream client
func (d *Dependencies) initClients() {
	d.CityData = upstream.NewClient(upstream.Config{
		BaseURL:          d.Config.Upstream.BaseURL,
		Timeout:          d.Config.Upstream.Timeout,
		RequestsPerSec:   d.Config.Upstream.RequestsPerSec,
		Burst:            d.Config.Upstream.Burst,
		BreakerTimeout:   d.Config.Upstream.BreakerTimeout,
		BreakerThreshold: d.Config.Upstream.BreakerThreshold,
	}, d.Logger)

	d.Logger.Info("upstream client initialized", "base_url", d.Config.Upstream.BaseURL)
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() {
	d.Metrics = observability.NewMetrics(d.Registry)
	d.Orchestrator = citydetail.NewOrchestrator(d.CityData, d.Logger, d.Metrics)
	d.CityDetailSvc = citydetail.NewService(d.Orchestrator, d.Logger)
	d.LookupSvc = lookup.NewService(d.CityData, d.Config.Cache.LookupTTL, d.Logger)

	d.Logger.Info("services initialized")
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.CityDetailHandler = citydetail.NewHandler(d.CityDetailSvc, d.Logger)
	d.LookupHandler = lookup.NewHandler(d.LookupSvc, d.Logger)
	d.Logger.Info("handlers initialized")
}
