package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout-service/cart"
	"checkout-service/models"
)

func cartWithUnits(t *testing.T, units int) *cart.Cart {
	t.Helper()
	c := cart.New()
	require.NoError(t, c.Add(&models.Product{Name: "Pen", Price: 1, Quantity: 100}, units))
	return c
}

func TestLargeOrderDiscount(t *testing.T) {
	c := cartWithUnits(t, 1)
	customer := &models.Customer{Name: "Ahmed", Balance: 600}

	discounts := applicableDiscounts(c, customer, 350)
	require.Len(t, discounts, 1)
	assert.Equal(t, "Large Order Discount (10% off)", discounts[0].Label)
	assert.InDelta(t, 35.0, discounts[0].Amount, 1e-9)

	assert.Empty(t, applicableDiscounts(c, customer, 299.99))
}

func TestWelcomeDiscountRequiresExactBalance(t *testing.T) {
	c := cartWithUnits(t, 1)

	discounts := applicableDiscounts(c, &models.Customer{Balance: 1000.0}, 100)
	require.Len(t, discounts, 1)
	assert.Equal(t, "Welcome Discount", discounts[0].Label)
	assert.InDelta(t, 25.0, discounts[0].Amount, 1e-9)

	// Capped at the subtotal for tiny orders.
	discounts = applicableDiscounts(c, &models.Customer{Balance: 1000.0}, 10)
	require.Len(t, discounts, 1)
	assert.InDelta(t, 10.0, discounts[0].Amount, 1e-9)

	assert.Empty(t, applicableDiscounts(c, &models.Customer{Balance: 1000.01}, 100))
	assert.Empty(t, applicableDiscounts(c, &models.Customer{Balance: 999.99}, 100))
}

func TestVIPDiscountStacksWithLargeOrder(t *testing.T) {
	c := cartWithUnits(t, 1)
	customer := &models.Customer{Balance: 9999}

	discounts := applicableDiscounts(c, customer, 2000)
	require.Len(t, discounts, 2)
	// Both computed against the original subtotal.
	assert.InDelta(t, 200.0, discounts[0].Amount, 1e-9)
	assert.InDelta(t, 300.0, discounts[1].Amount, 1e-9)
	assert.InDelta(t, 500.0, discountTotal(discounts), 1e-9)
}

func TestMultiItemDiscount(t *testing.T) {
	customer := &models.Customer{Balance: 500}

	discounts := applicableDiscounts(cartWithUnits(t, 5), customer, 100)
	require.Len(t, discounts, 1)
	assert.Equal(t, "Multi-Item Discount (5% off)", discounts[0].Label)
	assert.InDelta(t, 5.0, discounts[0].Amount, 1e-9)

	assert.Empty(t, applicableDiscounts(cartWithUnits(t, 4), customer, 100))
}

// Units are counted across lines, not per line.
func TestMultiItemDiscountCountsAcrossLines(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(&models.Product{Name: "Pen", Price: 1, Quantity: 100}, 3))
	require.NoError(t, c.Add(&models.Product{Name: "Notebook", Price: 2, Quantity: 100}, 2))

	discounts := applicableDiscounts(c, &models.Customer{Balance: 500}, 7)
	require.Len(t, discounts, 1)
	assert.Equal(t, "Multi-Item Discount (5% off)", discounts[0].Label)
}
