package models

import "time"

// Product is a catalog entry. Weight of zero means the product needs no
// shipping; a nil ExpiresAt means it never expires.
type Product struct {
	ProductID int32      `json:"product_id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	Weight    float64    `json:"weight"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (p *Product) Shippable() bool {
	return p.Weight > 0
}

func (p *Product) Expirable() bool {
	return p.ExpiresAt != nil
}

// Expired reports whether the product's expiration date is strictly before
// now's calendar date. A product expiring today is still sellable.
func (p *Product) Expired(now time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return dateOf(now).After(dateOf(*p.ExpiresAt))
}

// DecreaseQuantity removes amount units from stock. Amounts larger than the
// remaining stock are ignored; stock never goes negative.
func (p *Product) DecreaseQuantity(amount int) {
	if amount <= p.Quantity {
		p.Quantity -= amount
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
