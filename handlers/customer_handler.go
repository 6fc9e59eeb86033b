package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"checkout-service/customers"
	"checkout-service/models"
)

type CustomerHandler struct {
	store  *customers.Store
	logger *zap.Logger
}

func NewCustomerHandler(store *customers.Store, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{store: store, logger: logger}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	customer, err := h.store.Create(req.Name, req.Balance)
	if err != nil {
		var invalid *models.InvalidArgumentError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   invalid.Code(),
				Message: "Invalid customer fields",
				Details: invalid.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "INTERNAL",
			Message: "Failed to create customer",
		})
		return
	}

	h.logger.Info("created customer",
		zap.Int32("customer_id", customer.CustomerID),
		zap.String("name", customer.Name))

	c.JSON(http.StatusCreated, models.CreateCustomerResponse{CustomerID: customer.CustomerID})
}

// GetCustomer handles GET /customers/{customerId}
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId", "customer")
	if !ok {
		return
	}

	customer, exists := h.store.Get(customerID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Customer not found",
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// TopUp handles POST /customers/{customerId}/topup
func (h *CustomerHandler) TopUp(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId", "customer")
	if !ok {
		return
	}

	var req models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	customer, err := h.store.TopUp(customerID, req.Amount)
	if err != nil {
		var invalid *models.InvalidArgumentError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   invalid.Code(),
				Message: "Invalid top-up",
				Details: invalid.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "INTERNAL",
			Message: "Failed to top up",
		})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Customer not found",
		})
		return
	}

	h.logger.Info("topped up customer balance",
		zap.Int32("customer_id", customerID),
		zap.Float64("amount", req.Amount))

	c.JSON(http.StatusOK, customer)
}
