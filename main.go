package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"checkout-service/catalog"
	"checkout-service/checkout"
	"checkout-service/config"
	"checkout-service/customers"
	"checkout-service/handlers"
	"checkout-service/metrics"
	"checkout-service/rabbitmq"
	"checkout-service/shipping"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting checkout service", zap.String("port", cfg.Port))

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Shipment notices go to the warehouse queue when RabbitMQ is
	// configured; otherwise they are dropped.
	var publisher checkout.ShipmentPublisher = checkout.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		channelPool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize, logger)
		if err != nil {
			logger.Fatal("failed to create RabbitMQ channel pool", zap.Error(err))
		}
		defer channelPool.Close()
		publisher = rabbitmq.NewPublisher(channelPool, cfg.RabbitMQQueue, logger)
	} else {
		logger.Warn("RABBITMQ_URL not set, shipment notices will not be published")
	}

	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)

	productCatalog := catalog.New()
	customerStore := customers.New()
	calculator := shipping.NewCalculator(cfg.BaseShippingFee, cfg.WeightRatePerKG, cfg.FreeShippingThreshold)
	checkoutService := checkout.NewService(calculator, publisher, logger, checkoutMetrics)

	productHandler := handlers.NewProductHandler(productCatalog, logger)
	customerHandler := handlers.NewCustomerHandler(customerStore, logger)
	cartHandler := handlers.NewCartHandler(productCatalog, logger)
	checkoutHandler := handlers.NewCheckoutHandler(cartHandler, customerStore, checkoutService, logger)

	router := gin.Default()

	// Routes
	router.POST("/products", productHandler.CreateProduct)
	router.GET("/products", productHandler.ListProducts)
	router.GET("/products/:productId", productHandler.GetProduct)

	router.POST("/customers", customerHandler.CreateCustomer)
	router.GET("/customers/:customerId", customerHandler.GetCustomer)
	router.POST("/customers/:customerId/topup", customerHandler.TopUp)

	router.POST("/shopping-cart", cartHandler.CreateCart)
	router.GET("/shopping-carts/:shoppingCartId", cartHandler.GetCartContents)
	router.POST("/shopping-carts/:shoppingCartId/addItem", cartHandler.AddItem)
	router.POST("/shopping-carts/:shoppingCartId/removeItem", cartHandler.RemoveItem)
	router.POST("/shopping-carts/:shoppingCartId/clear", cartHandler.ClearCart)
	router.POST("/shopping-carts/:shoppingCartId/checkout", checkoutHandler.Checkout)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
