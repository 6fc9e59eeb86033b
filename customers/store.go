package customers

import (
	"sync"

	"checkout-service/models"
)

// Store is the in-memory customer account store.
type Store struct {
	mu             sync.RWMutex
	customers      map[int32]*models.Customer
	nextCustomerID int32
}

func New() *Store {
	return &Store{
		customers:      make(map[int32]*models.Customer),
		nextCustomerID: 1,
	}
}

func (s *Store) Create(name string, balance float64) (*models.Customer, error) {
	if name == "" {
		return nil, &models.InvalidArgumentError{Reason: "customer name is required"}
	}
	if balance < 0 {
		return nil, &models.InvalidArgumentError{Reason: "balance must not be negative"}
	}

	s.mu.Lock()
	customer := &models.Customer{
		CustomerID: s.nextCustomerID,
		Name:       name,
		Balance:    balance,
	}
	s.nextCustomerID++
	s.customers[customer.CustomerID] = customer
	s.mu.Unlock()
	return customer, nil
}

func (s *Store) Get(customerID int32) (*models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[customerID]
	return c, ok
}

// TopUp adds amount to the customer's balance.
func (s *Store) TopUp(customerID int32, amount float64) (*models.Customer, error) {
	if amount <= 0 {
		return nil, &models.InvalidArgumentError{Reason: "top-up amount must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[customerID]
	if !ok {
		return nil, nil
	}
	c.TopUp(amount)
	return c, nil
}
