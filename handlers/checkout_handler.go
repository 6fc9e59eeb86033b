package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"checkout-service/checkout"
	"checkout-service/customers"
	"checkout-service/models"
)

type CheckoutHandler struct {
	cartHandler *CartHandler
	customers   *customers.Store
	service     *checkout.Service
	logger      *zap.Logger
}

func NewCheckoutHandler(cartHandler *CartHandler, store *customers.Store, service *checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		cartHandler: cartHandler,
		customers:   store,
		service:     service,
		logger:      logger,
	}
}

// Checkout handles POST /shopping-carts/{shoppingCartId}/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	cartID, ok := parseIDParam(c, "shoppingCartId", "shopping cart")
	if !ok {
		return
	}

	session, exists := h.cartHandler.GetSession(cartID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Shopping cart not found",
		})
		return
	}

	customer, exists := h.customers.Get(session.CustomerID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Customer not found",
		})
		return
	}

	// The cart must not change between the validation gates and the
	// commit, so the pipeline runs under the same lock that guards the
	// add/remove/clear endpoints.
	h.cartHandler.mu.Lock()
	receipt, err := h.service.Checkout(customer, session.Cart)
	h.cartHandler.mu.Unlock()
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	h.logger.Info("checked out cart",
		zap.Int32("cart_id", cartID),
		zap.String("order_id", receipt.OrderID))

	c.JSON(http.StatusOK, receipt)
}
