package models

import "time"

type CreateProductRequest struct {
	Name      string     `json:"name" binding:"required"`
	Price     float64    `json:"price" binding:"min=0"`
	Quantity  int        `json:"quantity" binding:"min=0"`
	Weight    float64    `json:"weight" binding:"min=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type CreateProductResponse struct {
	ProductID int32 `json:"product_id"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Balance float64 `json:"balance" binding:"min=0"`
}

type CreateCustomerResponse struct {
	CustomerID int32 `json:"customer_id"`
}

type TopUpRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateCartRequest struct {
	CustomerID int32 `json:"customer_id" binding:"required,min=1"`
}

type CreateCartResponse struct {
	ShoppingCartID int32 `json:"shopping_cart_id"`
}

type AddItemRequest struct {
	ProductID int32 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type RemoveItemRequest struct {
	ProductID int32 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity"`
}

type CartLineView struct {
	ProductID int32   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	ShoppingCartID int32          `json:"shopping_cart_id"`
	CustomerID     int32          `json:"customer_id"`
	Lines          []CartLineView `json:"lines"`
	Subtotal       float64        `json:"subtotal"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
