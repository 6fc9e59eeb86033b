package catalog

import (
	"sync"

	"checkout-service/models"
)

// Catalog is the in-memory product store.
type Catalog struct {
	mu            sync.RWMutex
	products      map[int32]*models.Product
	nextProductID int32
}

func New() *Catalog {
	return &Catalog{
		products:      make(map[int32]*models.Product),
		nextProductID: 1,
	}
}

// Add validates and stores a product, assigning its ID.
func (c *Catalog) Add(p *models.Product) error {
	if p == nil || p.Name == "" {
		return &models.InvalidArgumentError{Reason: "product name is required"}
	}
	if p.Price < 0 {
		return &models.InvalidArgumentError{Reason: "price must not be negative"}
	}
	if p.Quantity < 0 {
		return &models.InvalidArgumentError{Reason: "quantity must not be negative"}
	}
	if p.Weight < 0 {
		return &models.InvalidArgumentError{Reason: "weight must not be negative"}
	}

	c.mu.Lock()
	p.ProductID = c.nextProductID
	c.nextProductID++
	c.products[p.ProductID] = p
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Get(productID int32) (*models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[productID]
	return p, ok
}

// List returns the products in ID order.
func (c *Catalog) List() []*models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Product, 0, len(c.products))
	for id := int32(1); id < c.nextProductID; id++ {
		if p, ok := c.products[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
