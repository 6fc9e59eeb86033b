package checkout

import (
	"checkout-service/cart"
	"checkout-service/models"
)

// Discount thresholds and rates.
const (
	largeOrderThreshold = 300.0
	largeOrderRate      = 0.10

	welcomeBalance = 1000.0
	welcomeAmount  = 25.0

	vipThreshold = 1000.0
	vipRate      = 0.15

	multiItemUnits = 5
	multiItemRate  = 0.05
)

// applicableDiscounts evaluates every discount rule against the original
// subtotal. Rules stack additively; none is computed against another's
// result. The total may exceed the subtotal, which the pipeline deliberately
// does not clamp.
func applicableDiscounts(crt *cart.Cart, customer *models.Customer, subtotal float64) []models.DiscountLine {
	var discounts []models.DiscountLine

	if subtotal >= largeOrderThreshold {
		discounts = append(discounts, models.DiscountLine{
			Label:  "Large Order Discount (10% off)",
			Amount: subtotal * largeOrderRate,
		})
	}

	// A balance of exactly 1000.0 marks a first-time customer.
	if customer.Balance == welcomeBalance {
		discounts = append(discounts, models.DiscountLine{
			Label:  "Welcome Discount",
			Amount: min(welcomeAmount, subtotal),
		})
	}

	if subtotal >= vipThreshold {
		discounts = append(discounts, models.DiscountLine{
			Label:  "VIP Discount (15% off)",
			Amount: subtotal * vipRate,
		})
	}

	if crt.TotalUnits() >= multiItemUnits {
		discounts = append(discounts, models.DiscountLine{
			Label:  "Multi-Item Discount (5% off)",
			Amount: subtotal * multiItemRate,
		})
	}

	return discounts
}

func discountTotal(discounts []models.DiscountLine) float64 {
	var total float64
	for _, d := range discounts {
		total += d.Amount
	}
	return total
}
