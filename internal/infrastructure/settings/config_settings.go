package settings

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sangkips/investify-pos/internal/config"
	"github.com/sangkips/investify-pos/internal/domain/entity"
	"github.com/sangkips/investify-pos/pkg/apperror"
)

// ConfigTaxSettings serves VAT settings loaded from configuration.
// Update replaces them at runtime, e.g. when the settings page is saved.
type ConfigTaxSettings struct {
	mu  sync.RWMutex
	tax entity.TaxConfig
}

// NewConfigTaxSettings creates tax settings from the loaded configuration
func NewConfigTaxSettings(cfg config.TaxConfig) (*ConfigTaxSettings, error) {
	rate, err := cfg.VATRate()
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid VAT rate: " + cfg.VATRatePercent)
	}
	return &ConfigTaxSettings{
		tax: entity.TaxConfig{VATEnabled: cfg.VATEnabled, VATRatePercent: rate},
	}, nil
}

// Get returns the current VAT settings
func (s *ConfigTaxSettings) Get(ctx context.Context) (entity.TaxConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tax, nil
}

// Update replaces the VAT settings
func (s *ConfigTaxSettings) Update(enabled bool, ratePercent decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tax = entity.TaxConfig{VATEnabled: enabled, VATRatePercent: ratePercent}
}
