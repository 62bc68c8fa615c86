package repository

import (
	"context"

	"github.com/sangkips/investify-pos/internal/domain/entity"
)

// SaleSubmitter hands a checked-out sale to transaction submission
type SaleSubmitter interface {
	Submit(ctx context.Context, sale *entity.Sale) error
}
