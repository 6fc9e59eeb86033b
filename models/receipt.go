package models

// ReceiptLine is one purchased cart entry on the receipt.
type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// DiscountLine is one applied discount rule and the amount it took off.
type DiscountLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Receipt is the structured outcome of a successful checkout.
type Receipt struct {
	OrderID            string         `json:"order_id"`
	Customer           string         `json:"customer"`
	Lines              []ReceiptLine  `json:"lines"`
	Subtotal           float64        `json:"subtotal"`
	Discounts          []DiscountLine `json:"discounts,omitempty"`
	DiscountTotal      float64        `json:"discount_total"`
	DiscountedSubtotal float64        `json:"discounted_subtotal"`
	ShippingFee        float64        `json:"shipping_fee"`
	FreeShipping       bool           `json:"free_shipping"`
	TaxTotal           float64        `json:"tax_total"`
	Total              float64        `json:"total"`
	RemainingBalance   float64        `json:"remaining_balance"`
	Shipment           *Shipment      `json:"shipment,omitempty"`
}

// ShipmentLine is one physical item group inside a shipment.
type ShipmentLine struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	TotalWeight float64 `json:"total_weight"`
}

// Shipment is the notice sent to the warehouse for the shippable part of an
// order.
type Shipment struct {
	OrderID      string         `json:"order_id"`
	Customer     string         `json:"customer"`
	Lines        []ShipmentLine `json:"lines"`
	TotalWeight  float64        `json:"total_weight"`
	Fee          float64        `json:"fee"`
	FreeShipping bool           `json:"free_shipping"`
}
