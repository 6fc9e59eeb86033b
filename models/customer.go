package models

// Customer holds an account name and its spendable balance.
type Customer struct {
	CustomerID int32   `json:"customer_id"`
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
}

// Deduct removes amount from the balance. The checkout pipeline checks the
// balance before calling this, so the guard should never fire.
func (c *Customer) Deduct(amount float64) {
	if amount <= c.Balance {
		c.Balance -= amount
	}
}

// TopUp adds amount to the balance. Non-positive amounts are ignored.
func (c *Customer) TopUp(amount float64) {
	if amount > 0 {
		c.Balance += amount
	}
}
