package repository

import (
	"context"

	"github.com/sangkips/investify-pos/internal/domain/entity"
)

// TaxSettingsRepository supplies the system VAT settings
type TaxSettingsRepository interface {
	Get(ctx context.Context) (entity.TaxConfig, error)
}
