package models

import (
	"fmt"
	"time"
)

// Error codes shared between the pipeline errors and the HTTP error envelope.
const (
	CodeEmptyCart           = "EMPTY_CART"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeProductExpired      = "PRODUCT_EXPIRED"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeInvalidInput        = "INVALID_INPUT"
)

// EmptyCartError is returned when checkout is attempted on an empty cart.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "cannot checkout with an empty cart"
}

func (e *EmptyCartError) Code() string { return CodeEmptyCart }

// InsufficientStockError is returned when a requested quantity exceeds the
// available stock, either at cart-add time or during the checkout re-check.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.Product, e.Requested, e.Available)
}

func (e *InsufficientStockError) Code() string { return CodeInsufficientStock }

// ProductExpiredError is returned when a cart line's product has passed its
// expiration date.
type ProductExpiredError struct {
	Product   string
	ExpiredOn time.Time
}

func (e *ProductExpiredError) Error() string {
	return fmt.Sprintf("product %s expired on %s", e.Product, e.ExpiredOn.Format("2006-01-02"))
}

func (e *ProductExpiredError) Code() string { return CodeProductExpired }

// InsufficientBalanceError is returned when the customer cannot cover the
// computed total.
type InsufficientBalanceError struct {
	Required  float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %.2f, available %.2f",
		e.Required, e.Available)
}

func (e *InsufficientBalanceError) Code() string { return CodeInsufficientBalance }

// InvalidArgumentError is returned for nil products, non-positive quantities
// and similar caller mistakes.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func (e *InvalidArgumentError) Code() string { return CodeInvalidInput }
