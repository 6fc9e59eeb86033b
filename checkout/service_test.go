package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"checkout-service/cart"
	"checkout-service/models"
	"checkout-service/shipping"
)

type fakePublisher struct {
	shipments []models.Shipment
	err       error
}

func (f *fakePublisher) PublishShipment(s models.Shipment) error {
	if f.err != nil {
		return f.err
	}
	f.shipments = append(f.shipments, s)
	return nil
}

func newTestService(publisher ShipmentPublisher) *Service {
	calc := shipping.NewCalculator(shipping.DefaultBaseFee, shipping.DefaultRatePerKG, shipping.DefaultFreeThreshold)
	return NewService(calc, publisher, zap.NewNop(), nil)
}

func datePtr(t time.Time) *time.Time { return &t }

func futureDate() *time.Time { return datePtr(time.Now().AddDate(0, 1, 0)) }

func pastDate() *time.Time { return datePtr(time.Now().AddDate(0, 0, -2)) }

func TestCheckoutBasicScenario(t *testing.T) {
	cheese := &models.Product{Name: "Cheese", Price: 100, Quantity: 10, Weight: 0.2, ExpiresAt: futureDate()}
	biscuits := &models.Product{Name: "Biscuits", Price: 150, Quantity: 15, Weight: 0.7, ExpiresAt: futureDate()}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000.0}

	crt := cart.New()
	require.NoError(t, crt.Add(cheese, 2))
	require.NoError(t, crt.Add(biscuits, 1))

	publisher := &fakePublisher{}
	receipt, err := newTestService(publisher).Checkout(customer, crt)
	require.NoError(t, err)

	assert.InDelta(t, 350.0, receipt.Subtotal, 1e-9)
	// Large-order 10% of 350 plus the welcome discount for the exact
	// 1000.0 balance.
	require.Len(t, receipt.Discounts, 2)
	assert.InDelta(t, 60.0, receipt.DiscountTotal, 1e-9)
	assert.InDelta(t, 290.0, receipt.DiscountedSubtotal, 1e-9)
	// 15 base + 1.1 kg x 10.
	assert.InDelta(t, 26.0, receipt.ShippingFee, 1e-9)
	assert.False(t, receipt.FreeShipping)
	// Both products are food tier: 5% of 350.
	assert.InDelta(t, 17.5, receipt.TaxTotal, 1e-9)
	assert.InDelta(t, 333.5, receipt.Total, 1e-9)
	assert.InDelta(t, 666.5, receipt.RemainingBalance, 1e-9)

	// Commit side effects.
	assert.Equal(t, 8, cheese.Quantity)
	assert.Equal(t, 14, biscuits.Quantity)
	assert.InDelta(t, 666.5, customer.Balance, 1e-9)

	// Shipment notice carries the same fee as the receipt.
	require.NotNil(t, receipt.Shipment)
	assert.InDelta(t, 26.0, receipt.Shipment.Fee, 1e-9)
	assert.InDelta(t, 1.1, receipt.Shipment.TotalWeight, 1e-9)
	require.Len(t, publisher.shipments, 1)
	assert.Equal(t, receipt.OrderID, publisher.shipments[0].OrderID)
}

func TestCheckoutFreeShippingScenario(t *testing.T) {
	tv := &models.Product{Name: "TV", Price: 5000, Quantity: 5, Weight: 15}
	customer := &models.Customer{Name: "Ahmed", Balance: 6000}

	crt := cart.New()
	require.NoError(t, crt.Add(tv, 1))

	receipt, err := newTestService(&fakePublisher{}).Checkout(customer, crt)
	require.NoError(t, err)

	assert.InDelta(t, 5000.0, receipt.Subtotal, 1e-9)
	// Large-order 500 and VIP 750, both off the original subtotal.
	assert.InDelta(t, 1250.0, receipt.DiscountTotal, 1e-9)
	assert.InDelta(t, 3750.0, receipt.DiscountedSubtotal, 1e-9)
	// Discounted subtotal is over the 500 threshold.
	assert.Zero(t, receipt.ShippingFee)
	assert.True(t, receipt.FreeShipping)
	// Electronics tier: 10% of 5000.
	assert.InDelta(t, 500.0, receipt.TaxTotal, 1e-9)
	assert.InDelta(t, 4250.0, receipt.Total, 1e-9)

	assert.Equal(t, 4, tv.Quantity)
	assert.InDelta(t, 1750.0, customer.Balance, 1e-9)

	require.NotNil(t, receipt.Shipment)
	assert.True(t, receipt.Shipment.FreeShipping)
}

func TestCheckoutEmptyCart(t *testing.T) {
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}

	receipt, err := newTestService(&fakePublisher{}).Checkout(customer, cart.New())
	require.Nil(t, receipt)

	var emptyCart *models.EmptyCartError
	assert.ErrorAs(t, err, &emptyCart)
	assert.InDelta(t, 1000.0, customer.Balance, 1e-9)
}

func TestCheckoutRechecksStock(t *testing.T) {
	tv := &models.Product{Name: "TV", Price: 5000, Quantity: 5, Weight: 15}
	customer := &models.Customer{Name: "Ahmed", Balance: 100000}

	crt := cart.New()
	require.NoError(t, crt.Add(tv, 3))

	// Another checkout drained the stock after this cart was filled.
	tv.Quantity = 2

	receipt, err := newTestService(&fakePublisher{}).Checkout(customer, crt)
	require.Nil(t, receipt)

	var noStock *models.InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, "TV", noStock.Product)
	assert.Equal(t, 3, noStock.Requested)
	assert.Equal(t, 2, noStock.Available)

	assert.Equal(t, 2, tv.Quantity)
	assert.InDelta(t, 100000.0, customer.Balance, 1e-9)
}

func TestCheckoutExpiredProductBlocksWholeCart(t *testing.T) {
	cheese := &models.Product{Name: "Cheese", Price: 100, Quantity: 10, Weight: 0.2, ExpiresAt: futureDate()}
	milk := &models.Product{Name: "Milk", Price: 20, Quantity: 8, Weight: 0.5, ExpiresAt: pastDate()}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}

	crt := cart.New()
	require.NoError(t, crt.Add(cheese, 2))
	require.NoError(t, crt.Add(milk, 1))

	publisher := &fakePublisher{}
	receipt, err := newTestService(publisher).Checkout(customer, crt)
	require.Nil(t, receipt)

	var expired *models.ProductExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, "Milk", expired.Product)

	// No partial mutation: the valid cheese line is untouched too.
	assert.Equal(t, 10, cheese.Quantity)
	assert.Equal(t, 8, milk.Quantity)
	assert.InDelta(t, 1000.0, customer.Balance, 1e-9)
	assert.Empty(t, publisher.shipments)
}

func TestCheckoutProductExpiringTodayIsValid(t *testing.T) {
	milk := &models.Product{Name: "Milk", Price: 20, Quantity: 8, ExpiresAt: datePtr(time.Now())}
	customer := &models.Customer{Name: "Ahmed", Balance: 100}

	crt := cart.New()
	require.NoError(t, crt.Add(milk, 1))

	receipt, err := newTestService(&fakePublisher{}).Checkout(customer, crt)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, receipt.Subtotal, 1e-9)
}

func TestCheckoutInsufficientBalance(t *testing.T) {
	tv := &models.Product{Name: "TV", Price: 5000, Quantity: 5, Weight: 15}
	customer := &models.Customer{Name: "Poor Customer", Balance: 50}

	crt := cart.New()
	require.NoError(t, crt.Add(tv, 1))

	receipt, err := newTestService(&fakePublisher{}).Checkout(customer, crt)
	require.Nil(t, receipt)

	var noBalance *models.InsufficientBalanceError
	require.ErrorAs(t, err, &noBalance)
	assert.InDelta(t, 4250.0, noBalance.Required, 1e-9)
	assert.InDelta(t, 50.0, noBalance.Available, 1e-9)

	assert.Equal(t, 5, tv.Quantity)
	assert.InDelta(t, 50.0, customer.Balance, 1e-9)
}

// First invalid line in insertion order decides the failure.
func TestCheckoutValidationOrder(t *testing.T) {
	outOfStock := &models.Product{Name: "Cheese", Price: 100, Quantity: 10}
	expired := &models.Product{Name: "Milk", Price: 20, Quantity: 8, ExpiresAt: pastDate()}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000}

	crt := cart.New()
	require.NoError(t, crt.Add(outOfStock, 2))
	require.NoError(t, crt.Add(expired, 1))
	outOfStock.Quantity = 1

	_, err := newTestService(&fakePublisher{}).Checkout(customer, crt)
	var noStock *models.InsufficientStockError
	assert.ErrorAs(t, err, &noStock)
}

func TestCheckoutWithoutShippableItems(t *testing.T) {
	card := &models.Product{Name: "Mobile scratch card", Price: 50, Quantity: 20}
	customer := &models.Customer{Name: "Ahmed", Balance: 500}

	crt := cart.New()
	require.NoError(t, crt.Add(card, 2))

	publisher := &fakePublisher{}
	receipt, err := newTestService(publisher).Checkout(customer, crt)
	require.NoError(t, err)

	assert.Zero(t, receipt.ShippingFee)
	assert.False(t, receipt.FreeShipping)
	assert.Nil(t, receipt.Shipment)
	assert.Empty(t, publisher.shipments)
	// Digital tier: 12% of 100.
	assert.InDelta(t, 12.0, receipt.TaxTotal, 1e-9)
}

// On a tiny order the flat welcome discount plus the 5% multi-item rate can
// exceed the subtotal. The discounted subtotal goes negative and flows into
// the total unclamped.
func TestCheckoutUnclampedNegativeDiscountedSubtotal(t *testing.T) {
	pen := &models.Product{Name: "Pen", Price: 2, Quantity: 100}
	customer := &models.Customer{Name: "Ahmed", Balance: 1000.0}

	crt := cart.New()
	require.NoError(t, crt.Add(pen, 5))

	receipt, err := newTestService(&fakePublisher{}).Checkout(customer, crt)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, receipt.Subtotal, 1e-9)
	// Welcome min(25, 10) = 10 plus multi-item 5% of 10.
	assert.InDelta(t, 10.5, receipt.DiscountTotal, 1e-9)
	assert.InDelta(t, -0.5, receipt.DiscountedSubtotal, 1e-9)
	// General tier: 8% of 10.
	assert.InDelta(t, 0.8, receipt.TaxTotal, 1e-9)
	assert.InDelta(t, 0.3, receipt.Total, 1e-9)

	assert.Equal(t, 95, pen.Quantity)
	assert.InDelta(t, 999.7, customer.Balance, 1e-9)
}

func TestCheckoutSucceedsWhenPublishFails(t *testing.T) {
	tv := &models.Product{Name: "TV", Price: 5000, Quantity: 5, Weight: 15}
	customer := &models.Customer{Name: "Ahmed", Balance: 6000}

	crt := cart.New()
	require.NoError(t, crt.Add(tv, 1))

	publisher := &fakePublisher{err: errors.New("broker down")}
	receipt, err := newTestService(publisher).Checkout(customer, crt)
	require.NoError(t, err)
	require.NotNil(t, receipt.Shipment)
	assert.Equal(t, 4, tv.Quantity)
}

func TestCheckoutDefaultsToNopPublisher(t *testing.T) {
	tv := &models.Product{Name: "TV", Price: 5000, Quantity: 5, Weight: 15}
	customer := &models.Customer{Name: "Ahmed", Balance: 6000}

	crt := cart.New()
	require.NoError(t, crt.Add(tv, 1))

	calc := shipping.NewCalculator(shipping.DefaultBaseFee, shipping.DefaultRatePerKG, shipping.DefaultFreeThreshold)
	svc := NewService(calc, nil, zap.NewNop(), nil)

	_, err := svc.Checkout(customer, crt)
	assert.NoError(t, err)
}
