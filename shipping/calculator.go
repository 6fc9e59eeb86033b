package shipping

import (
	"checkout-service/cart"
	"checkout-service/models"
)

// Default rates, overridable through configuration.
const (
	DefaultBaseFee       = 15.0
	DefaultRatePerKG     = 10.0
	DefaultFreeThreshold = 500.0
)

// Calculator computes weight-based shipping fees. It is stateless and is
// constructed once in main and handed to the checkout service.
type Calculator struct {
	BaseFee       float64
	RatePerKG     float64
	FreeThreshold float64
}

func NewCalculator(baseFee, ratePerKG, freeThreshold float64) *Calculator {
	return &Calculator{
		BaseFee:       baseFee,
		RatePerKG:     ratePerKG,
		FreeThreshold: freeThreshold,
	}
}

// TotalWeight sums weight times quantity over the shippable lines only.
func TotalWeight(lines []cart.Line) float64 {
	var total float64
	for _, l := range lines {
		if l.Product.Shippable() {
			total += l.Product.Weight * float64(l.Quantity)
		}
	}
	return total
}

// Fee returns the shipping charge for totalWeight kilograms on an order
// whose subtotal is given. Orders at or above the free threshold ship free;
// everything else pays the base fee plus the per-kilogram rate.
func (c *Calculator) Fee(totalWeight, subtotal float64) float64 {
	if subtotal >= c.FreeThreshold {
		return 0
	}
	return c.BaseFee + totalWeight*c.RatePerKG
}

// BuildShipment assembles the shipment notice for the shippable lines of an
// order. It returns nil when nothing needs shipping. The subtotal is the
// same discounted subtotal used to size the customer's charge, so the fee on
// the notice always matches the fee on the receipt.
func (c *Calculator) BuildShipment(orderID, customer string, lines []cart.Line, subtotal float64) *models.Shipment {
	var shipLines []models.ShipmentLine
	var totalWeight float64

	for _, l := range lines {
		if !l.Product.Shippable() {
			continue
		}
		w := l.Product.Weight * float64(l.Quantity)
		totalWeight += w
		shipLines = append(shipLines, models.ShipmentLine{
			Name:        l.Product.Name,
			Quantity:    l.Quantity,
			TotalWeight: w,
		})
	}
	if len(shipLines) == 0 {
		return nil
	}

	fee := c.Fee(totalWeight, subtotal)
	return &models.Shipment{
		OrderID:      orderID,
		Customer:     customer,
		Lines:        shipLines,
		TotalWeight:  totalWeight,
		Fee:          fee,
		FreeShipping: fee == 0,
	}
}
