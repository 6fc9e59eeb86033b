package checkout

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkout-service/cart"
	"checkout-service/metrics"
	"checkout-service/models"
	"checkout-service/shipping"
)

// ShipmentPublisher delivers shipment notices to the warehouse. The RabbitMQ
// publisher implements it in production; tests use a fake.
type ShipmentPublisher interface {
	PublishShipment(shipment models.Shipment) error
}

// NopPublisher drops shipment notices. Used when RabbitMQ is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishShipment(models.Shipment) error { return nil }

// Service runs the checkout pricing pipeline: validation, discounts,
// shipping, tax, the balance gate, and finally the commit that decrements
// stock, deducts the balance, and sends the shipment notice.
type Service struct {
	shipping  *shipping.Calculator
	publisher ShipmentPublisher
	logger    *zap.Logger
	metrics   *metrics.CheckoutMetrics
}

func NewService(calc *shipping.Calculator, publisher ShipmentPublisher, logger *zap.Logger, m *metrics.CheckoutMetrics) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{
		shipping:  calc,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
	}
}

type codedError interface {
	error
	Code() string
}

// Checkout runs the pipeline for one cart. Every gate must pass before any
// stock or balance mutation happens; a failed gate returns a typed error and
// leaves everything untouched.
func (s *Service) Checkout(customer *models.Customer, crt *cart.Cart) (*models.Receipt, error) {
	receipt, err := s.performCheckout(customer, crt)
	if err != nil {
		if s.metrics != nil {
			if coded, ok := err.(codedError); ok {
				s.metrics.Failure(coded.Code())
			} else {
				s.metrics.Failure("INTERNAL")
			}
		}
		s.logger.Warn("checkout failed",
			zap.String("customer", customer.Name),
			zap.Error(err))
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.Success()
	}
	s.logger.Info("checkout completed",
		zap.String("order_id", receipt.OrderID),
		zap.String("customer", customer.Name),
		zap.Float64("total", receipt.Total))
	return receipt, nil
}

func (s *Service) performCheckout(customer *models.Customer, crt *cart.Cart) (*models.Receipt, error) {
	if crt.IsEmpty() {
		return nil, &models.EmptyCartError{}
	}

	now := time.Now()
	lines := crt.Lines()

	var subtotal float64
	var shippableLines []cart.Line
	receiptLines := make([]models.ReceiptLine, 0, len(lines))

	// Re-check stock and expiry per line; stock may have moved since the
	// items were added to this cart.
	for _, l := range lines {
		if l.Product.Quantity < l.Quantity {
			return nil, &models.InsufficientStockError{
				Product:   l.Product.Name,
				Requested: l.Quantity,
				Available: l.Product.Quantity,
			}
		}
		if l.Product.Expired(now) {
			return nil, &models.ProductExpiredError{
				Product:   l.Product.Name,
				ExpiredOn: *l.Product.ExpiresAt,
			}
		}

		lineTotal := l.Product.Price * float64(l.Quantity)
		subtotal += lineTotal
		receiptLines = append(receiptLines, models.ReceiptLine{
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			LineTotal: lineTotal,
		})

		if l.Product.Shippable() {
			shippableLines = append(shippableLines, l)
		}
	}

	discounts := applicableDiscounts(crt, customer, subtotal)
	totalDiscount := discountTotal(discounts)
	// Stacked discounts can exceed the subtotal; the result is carried
	// through unclamped.
	discountedSubtotal := subtotal - totalDiscount

	var shippingFee float64
	if len(shippableLines) > 0 {
		shippingFee = s.shipping.Fee(shipping.TotalWeight(shippableLines), discountedSubtotal)
	}

	var taxAmount float64
	for _, l := range lines {
		taxAmount += l.Product.Price * float64(l.Quantity) * taxRateFor(l.Product.Name)
	}

	totalAmount := discountedSubtotal + shippingFee + taxAmount

	if customer.Balance < totalAmount {
		return nil, &models.InsufficientBalanceError{
			Required:  totalAmount,
			Available: customer.Balance,
		}
	}

	// All gates passed; commit.
	orderID := uuid.NewString()

	for _, l := range lines {
		l.Product.DecreaseQuantity(l.Quantity)
	}
	customer.Deduct(totalAmount)

	shipment := s.shipping.BuildShipment(orderID, customer.Name, shippableLines, discountedSubtotal)
	if shipment != nil {
		if err := s.publisher.PublishShipment(*shipment); err != nil {
			// The order is already committed; the notice can be replayed.
			s.logger.Error("failed to publish shipment notice",
				zap.String("order_id", orderID),
				zap.Error(err))
		}
	}

	return &models.Receipt{
		OrderID:            orderID,
		Customer:           customer.Name,
		Lines:              receiptLines,
		Subtotal:           subtotal,
		Discounts:          discounts,
		DiscountTotal:      totalDiscount,
		DiscountedSubtotal: discountedSubtotal,
		ShippingFee:        shippingFee,
		FreeShipping:       len(shippableLines) > 0 && shippingFee == 0,
		TaxTotal:           taxAmount,
		Total:              totalAmount,
		RemainingBalance:   customer.Balance,
		Shipment:           shipment,
	}, nil
}
