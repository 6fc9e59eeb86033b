package cart

import (
	"checkout-service/models"
)

// Line is one cart entry: a product and the quantity requested of it.
type Line struct {
	Product  *models.Product
	Quantity int
}

// Cart accumulates products for a single shopping session. Lines keep their
// insertion order, so validation during checkout always visits entries in
// the order they were added.
type Cart struct {
	lines []Line
	index map[string]int // product name -> position in lines
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add puts quantity units of product into the cart, merging with an existing
// line for the same product. The combined quantity must not exceed the
// product's available stock.
func (c *Cart) Add(product *models.Product, quantity int) error {
	if product == nil {
		return &models.InvalidArgumentError{Reason: "product is required"}
	}
	if quantity <= 0 {
		return &models.InvalidArgumentError{Reason: "quantity must be positive"}
	}

	current := 0
	if i, ok := c.index[product.Name]; ok {
		current = c.lines[i].Quantity
	}
	total := current + quantity

	if total > product.Quantity {
		return &models.InsufficientStockError{
			Product:   product.Name,
			Requested: total,
			Available: product.Quantity,
		}
	}

	if i, ok := c.index[product.Name]; ok {
		c.lines[i].Quantity = total
	} else {
		c.index[product.Name] = len(c.lines)
		c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	}
	return nil
}

// Remove takes quantity units of product out of the cart. A quantity that is
// zero, negative, or at least the current line quantity drops the line
// entirely. It reports false when the product is not in the cart so the
// caller can surface a warning.
func (c *Cart) Remove(product *models.Product, quantity int) bool {
	if product == nil {
		return false
	}
	i, ok := c.index[product.Name]
	if !ok {
		return false
	}

	if quantity <= 0 || quantity >= c.lines[i].Quantity {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		delete(c.index, product.Name)
		for j := i; j < len(c.lines); j++ {
			c.index[c.lines[j].Product.Name] = j
		}
	} else {
		c.lines[i].Quantity -= quantity
	}
	return true
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart entries in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalUnits is the total item count across all lines, used by the
// multi-item discount.
func (c *Cart) TotalUnits() int {
	units := 0
	for _, l := range c.lines {
		units += l.Quantity
	}
	return units
}

// Subtotal is the pre-discount sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, l := range c.lines {
		subtotal += l.Product.Price * float64(l.Quantity)
	}
	return subtotal
}
