package service

import (
	"context"

	"github.com/sangkips/investify-pos/internal/domain/entity"
	"github.com/sangkips/investify-pos/internal/domain/repository"
	"github.com/sangkips/investify-pos/pkg/apperror"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	taxRepo repository.TaxSettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(taxRepo repository.TaxSettingsRepository) *SettingsService {
	return &SettingsService{
		taxRepo: taxRepo,
	}
}

// TaxConfig retrieves the VAT settings used for pricing
func (s *SettingsService) TaxConfig(ctx context.Context) (entity.TaxConfig, error) {
	tax, err := s.taxRepo.Get(ctx)
	if err != nil {
		return entity.TaxConfig{}, err
	}

	if tax.VATRatePercent.IsNegative() {
		return entity.TaxConfig{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: "vat_rate_percent", Message: "must be non-negative"},
		})
	}

	return tax, nil
}
