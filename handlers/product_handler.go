package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"checkout-service/catalog"
	"checkout-service/models"
)

type ProductHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewProductHandler(cat *catalog.Catalog, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: cat, logger: logger}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	product := &models.Product{
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Weight:    req.Weight,
		ExpiresAt: req.ExpiresAt,
	}
	if err := h.catalog.Add(product); err != nil {
		var invalid *models.InvalidArgumentError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   invalid.Code(),
				Message: "Invalid product fields",
				Details: invalid.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "INTERNAL",
			Message: "Failed to create product",
		})
		return
	}

	h.logger.Info("created product",
		zap.Int32("product_id", product.ProductID),
		zap.String("name", product.Name))

	c.JSON(http.StatusCreated, models.CreateProductResponse{ProductID: product.ProductID})
}

// GetProduct handles GET /products/{productId}
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId", "product")
	if !ok {
		return
	}

	product, exists := h.catalog.Get(productID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// parseIDParam extracts a positive int32 path parameter, writing the error
// response itself when the value is unusable.
func parseIDParam(c *gin.Context, param, noun string) (int32, bool) {
	idStr := c.Param(param)
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.CodeInvalidInput,
			Message: "Invalid " + noun + " ID",
			Details: noun + " ID must be a positive integer",
		})
		return 0, false
	}
	return int32(id), true
}
