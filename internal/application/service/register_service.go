package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sangkips/investify-pos/internal/config"
	"github.com/sangkips/investify-pos/internal/domain/cart"
	"github.com/sangkips/investify-pos/internal/domain/entity"
	"github.com/sangkips/investify-pos/internal/domain/repository"
	"github.com/sangkips/investify-pos/internal/metrics"
	"github.com/sangkips/investify-pos/pkg/apperror"
	"github.com/sangkips/investify-pos/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// RegisterService is one point-of-sale terminal session and owns its cart
type RegisterService struct {
	mu        sync.Mutex
	id        uuid.UUID
	cart      *cart.Store
	settings  *SettingsService
	submitter repository.SaleSubmitter
	metrics   *metrics.CartMetrics
	logger    logrus.FieldLogger
	saleCfg   config.SaleConfig
	now       func() time.Time
}

// NewRegisterService creates a register with an empty cart
func NewRegisterService(
	settings *SettingsService,
	submitter repository.SaleSubmitter,
	cartMetrics *metrics.CartMetrics,
	logger logrus.FieldLogger,
	saleCfg config.SaleConfig,
) *RegisterService {
	id := utils.NewUUID()
	return &RegisterService{
		id:        id,
		cart:      cart.NewStore(),
		settings:  settings,
		submitter: submitter,
		metrics:   cartMetrics,
		logger:    logger.WithField("register_id", id.String()),
		saleCfg:   saleCfg,
		now:       time.Now,
	}
}

// ID returns the register identifier
func (s *RegisterService) ID() uuid.UUID {
	return s.id
}

// AddProduct adds quantity units of a catalog product to the cart
func (s *RegisterService) AddProduct(ctx context.Context, product *entity.Product, quantity int) (*entity.CartView, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := product.ToLineItem()
	if !cart.CanAdd(s.cart.Items(), candidate.ID, quantity, candidate.MaxStock) {
		s.logger.WithFields(logrus.Fields{
			"item_id":   candidate.ID,
			"requested": quantity,
			"max_stock": candidate.MaxStock,
		}).Info("quantity capped at available stock")
		s.metrics.RecordClamp("add_item")
	}

	s.cart.AddItem(candidate, quantity)
	s.metrics.RecordItemAdded()
	s.logger.WithFields(logrus.Fields{
		"item_id":  candidate.ID,
		"quantity": quantity,
	}).Debug("item added")

	return s.viewLocked(ctx)
}

// SetQuantity sets the quantity of a cart item; zero or less removes it
func (s *RegisterService) SetQuantity(ctx context.Context, itemID string, quantity int) (*entity.CartView, error) {
	if err := validateItemID(itemID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.cart.Item(itemID)
	if !ok {
		return nil, apperror.NewNotFoundError("Cart item")
	}
	if quantity > existing.MaxStock {
		s.logger.WithFields(logrus.Fields{
			"item_id":   itemID,
			"requested": quantity,
			"max_stock": existing.MaxStock,
		}).Info("quantity capped at available stock")
		s.metrics.RecordClamp("set_quantity")
	}

	s.cart.SetQuantity(itemID, quantity)
	s.logger.WithFields(logrus.Fields{
		"item_id":  itemID,
		"quantity": quantity,
	}).Debug("quantity set")

	return s.viewLocked(ctx)
}

// RemoveItem removes an item from the cart
func (s *RegisterService) RemoveItem(ctx context.Context, itemID string) (*entity.CartView, error) {
	if err := validateItemID(itemID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cart.Item(itemID); !ok {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	s.cart.RemoveItem(itemID)
	s.logger.WithField("item_id", itemID).Debug("item removed")

	return s.viewLocked(ctx)
}

// validateItemID checks the id has the form Product.ToLineItem produces
func validateItemID(itemID string) error {
	if _, err := utils.ParseUUID(itemID); err != nil {
		return apperror.NewBadRequestError("Invalid cart item ID")
	}
	return nil
}

// ApplyDiscount merges a discount update into the cart
func (s *RegisterService) ApplyDiscount(ctx context.Context, patch entity.DiscountPatch) (*entity.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := patch.PercentDiscount; p != nil && (p.IsNegative() || p.GreaterThan(hundred)) {
		s.logger.WithField("percent_discount", p.String()).Info("percent discount clamped into 0-100")
	}
	if f := patch.FlatSpecialDiscount; f != nil && f.IsNegative() {
		s.logger.WithField("flat_special_discount", f.String()).Info("negative special discount clamped to zero")
	}

	s.cart.SetDiscount(patch)
	d := s.cart.Discount()
	s.logger.WithFields(logrus.Fields{
		"percent_discount":      d.PercentDiscount.String(),
		"flat_special_discount": d.FlatSpecialDiscount.String(),
		"discount_id":           d.DiscountID,
	}).Debug("discount updated")

	return s.viewLocked(ctx)
}

// ApplyStockLevels pushes fresh stock ceilings from inventory.
// Ids not in the cart are ignored; negative levels reject the whole update.
func (s *RegisterService) ApplyStockLevels(ctx context.Context, levels map[string]int) (*entity.CartView, error) {
	ids := lo.Keys(levels)
	slices.Sort(ids)

	var fieldErrors []apperror.FieldError
	for _, id := range ids {
		if levels[id] < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: id, Message: "stock level must be non-negative"})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		existing, ok := s.cart.Item(id)
		if !ok {
			continue
		}
		maxStock := levels[id]
		if existing.Quantity > maxStock {
			s.logger.WithFields(logrus.Fields{
				"item_id":   id,
				"quantity":  existing.Quantity,
				"max_stock": maxStock,
			}).Info("quantity reduced to new stock level")
			s.metrics.RecordClamp("stock_update")
		}
		s.cart.SetItemStock(id, maxStock)
	}

	return s.viewLocked(ctx)
}

// Clear empties the cart and resets its discounts
func (s *RegisterService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.logger.Debug("cart cleared")
}

// View returns the cart contents with current pricing
func (s *RegisterService) View(ctx context.Context) (*entity.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked(ctx)
}

func (s *RegisterService) viewLocked(ctx context.Context) (*entity.CartView, error) {
	tax, err := s.settings.TaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	snap := s.cart.Snapshot()
	return &entity.CartView{
		Items:         snap.Items,
		ItemCount:     s.cart.Len(),
		TotalQuantity: s.cart.TotalQuantity(),
		Discount:      snap.Discount,
		Pricing:       cart.Calculate(snap, tax),
	}, nil
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	PaymentType string
	Paid        decimal.Decimal
}

// Checkout prices the cart, submits the sale and clears the cart.
// If submission fails the cart is left untouched so the cashier can retry.
func (s *RegisterService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Sale, error) {
	if input == nil {
		return nil, apperror.NewBadRequestError("Checkout input is required")
	}
	if input.Paid.IsNegative() {
		return nil, apperror.NewBadRequestError("Paid amount must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	tax, err := s.settings.TaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	snap := s.cart.Snapshot()
	pricing := cart.Calculate(snap, tax)
	final := pricing.FinalTotal

	sale := &entity.Sale{
		ID:          utils.NewUUID(),
		RegisterID:  s.id,
		InvoiceNo:   utils.GenerateInvoiceNo(s.saleCfg.InvoicePrefix),
		Currency:    s.saleCfg.Currency,
		PaymentType: input.PaymentType,
		Items:       snap.Items,
		Discount:    snap.Discount,
		Tax:         tax,
		Pricing:     pricing,
		Paid:        input.Paid,
		Due:         decimal.Max(decimal.Zero, final.Sub(input.Paid)),
		Change:      decimal.Max(decimal.Zero, input.Paid.Sub(final)),
		CreatedAt:   s.now(),
	}

	log := s.logger.WithFields(logrus.Fields{
		"sale_id":     sale.ID.String(),
		"invoice_no":  sale.InvoiceNo,
		"final_total": final.String(),
	})

	if err := s.submitter.Submit(ctx, sale); err != nil {
		log.WithError(err).Warn("sale submission failed")
		s.metrics.RecordCheckout(false, 0)
		return nil, apperror.Wrap(apperror.ErrSubmissionFailed, err)
	}

	s.metrics.RecordCheckout(true, final.InexactFloat64())
	log.Info("sale submitted")

	s.cart.Clear()
	return sale, nil
}
