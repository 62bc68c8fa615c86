package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/sangkips/investify-pos/internal/application/service"
	"github.com/sangkips/investify-pos/internal/config"
	"github.com/sangkips/investify-pos/internal/domain/repository"
	"github.com/sangkips/investify-pos/internal/infrastructure/settings"
	"github.com/sangkips/investify-pos/internal/logging"
	"github.com/sangkips/investify-pos/internal/metrics"
)

// App holds the shared dependencies a host needs to open registers
type App struct {
	Config      *config.Config
	Logger      *logrus.Logger
	TaxSettings *settings.ConfigTaxSettings
	Settings    *service.SettingsService
	Metrics     *metrics.CartMetrics
	submitter   repository.SaleSubmitter
}

// New validates cfg and builds the dependencies.
// registerer may be nil to use the default prometheus registerer.
func New(cfg *config.Config, submitter repository.SaleSubmitter, registerer prometheus.Registerer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log)

	taxSettings, err := settings.NewConfigTaxSettings(cfg.Tax)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"env":         cfg.App.Env,
		"vat_enabled": cfg.Tax.VATEnabled,
		"vat_rate":    cfg.Tax.VATRatePercent,
	}).Info("point of sale initialized")

	return &App{
		Config:      cfg,
		Logger:      logger,
		TaxSettings: taxSettings,
		Settings:    service.NewSettingsService(taxSettings),
		Metrics:     metrics.NewCartMetricsWithRegisterer(registerer),
		submitter:   submitter,
	}, nil
}

// OpenRegister starts a new register session with its own cart
func (a *App) OpenRegister() *service.RegisterService {
	return service.NewRegisterService(a.Settings, a.submitter, a.Metrics, a.Logger, a.Config.Sale)
}
