package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"checkout-service/cart"
	"checkout-service/catalog"
	"checkout-service/models"
)

// CartSession ties a cart to the customer shopping with it.
type CartSession struct {
	ShoppingCartID int32
	CustomerID     int32
	Cart           *cart.Cart
}

type CartHandler struct {
	mu         sync.RWMutex
	carts      map[int32]*CartSession
	nextCartID int32

	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewCartHandler(cat *catalog.Catalog, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:      make(map[int32]*CartSession),
		nextCartID: 1,
		catalog:    cat,
		logger:     logger,
	}
}

// CreateCart handles POST /shopping-cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req models.CreateCartRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.mu.Lock()
	cartID := h.nextCartID
	h.nextCartID++
	h.carts[cartID] = &CartSession{
		ShoppingCartID: cartID,
		CustomerID:     req.CustomerID,
		Cart:           cart.New(),
	}
	h.mu.Unlock()

	h.logger.Info("created shopping cart",
		zap.Int32("cart_id", cartID),
		zap.Int32("customer_id", req.CustomerID))

	c.JSON(http.StatusCreated, models.CreateCartResponse{ShoppingCartID: cartID})
}

// AddItem handles POST /shopping-carts/{shoppingCartId}/addItem
func (h *CartHandler) AddItem(c *gin.Context) {
	session, ok := h.sessionFromParam(c)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	product, exists := h.catalog.Get(req.ProductID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	h.mu.Lock()
	err := session.Cart.Add(product, req.Quantity)
	h.mu.Unlock()
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	h.logger.Info("added item to cart",
		zap.Int32("cart_id", session.ShoppingCartID),
		zap.Int32("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity))

	c.Status(http.StatusNoContent)
}

// RemoveItem handles POST /shopping-carts/{shoppingCartId}/removeItem
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session, ok := h.sessionFromParam(c)
	if !ok {
		return
	}

	var req models.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	product, exists := h.catalog.Get(req.ProductID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	h.mu.Lock()
	removed := session.Cart.Remove(product, req.Quantity)
	h.mu.Unlock()
	if !removed {
		h.logger.Warn("product not in cart",
			zap.Int32("cart_id", session.ShoppingCartID),
			zap.Int32("product_id", req.ProductID))
	}

	c.Status(http.StatusNoContent)
}

// ClearCart handles POST /shopping-carts/{shoppingCartId}/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	session, ok := h.sessionFromParam(c)
	if !ok {
		return
	}

	h.mu.Lock()
	session.Cart.Clear()
	h.mu.Unlock()

	h.logger.Info("cleared cart", zap.Int32("cart_id", session.ShoppingCartID))

	c.Status(http.StatusNoContent)
}

// GetCartContents handles GET /shopping-carts/{shoppingCartId}
func (h *CartHandler) GetCartContents(c *gin.Context) {
	session, ok := h.sessionFromParam(c)
	if !ok {
		return
	}

	h.mu.RLock()
	lines := session.Cart.Lines()
	subtotal := session.Cart.Subtotal()
	h.mu.RUnlock()

	view := models.CartView{
		ShoppingCartID: session.ShoppingCartID,
		CustomerID:     session.CustomerID,
		Lines:          make([]models.CartLineView, 0, len(lines)),
		Subtotal:       subtotal,
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, models.CartLineView{
			ProductID: l.Product.ProductID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			LineTotal: l.Product.Price * float64(l.Quantity),
		})
	}

	c.JSON(http.StatusOK, view)
}

// GetSession returns a cart session by ID (used by the checkout handler).
func (h *CartHandler) GetSession(cartID int32) (*CartSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	session, exists := h.carts[cartID]
	return session, exists
}

func (h *CartHandler) sessionFromParam(c *gin.Context) (*CartSession, bool) {
	cartID, ok := parseIDParam(c, "shoppingCartId", "shopping cart")
	if !ok {
		return nil, false
	}

	session, exists := h.GetSession(cartID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Shopping cart not found",
		})
		return nil, false
	}
	return session, true
}

// writeCheckoutError maps the pipeline's typed failures onto HTTP statuses.
func writeCheckoutError(c *gin.Context, err error) {
	var (
		emptyCart  *models.EmptyCartError
		noStock    *models.InsufficientStockError
		expired    *models.ProductExpiredError
		noBalance  *models.InsufficientBalanceError
		invalidArg *models.InvalidArgumentError
	)

	switch {
	case errors.As(err, &emptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   emptyCart.Code(),
			Message: "Cannot checkout an empty shopping cart",
		})
	case errors.As(err, &noStock):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   noStock.Code(),
			Message: "Insufficient stock",
			Details: noStock.Error(),
		})
	case errors.As(err, &expired):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   expired.Code(),
			Message: "Product has expired",
			Details: expired.Error(),
		})
	case errors.As(err, &noBalance):
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse{
			Error:   noBalance.Code(),
			Message: "Insufficient balance",
			Details: noBalance.Error(),
		})
	case errors.As(err, &invalidArg):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   invalidArg.Code(),
			Message: "Invalid request",
			Details: invalidArg.Reason,
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "INTERNAL",
			Message: "Unexpected error during checkout",
		})
	}
}
