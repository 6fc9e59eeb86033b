package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	LogLevel        string
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int

	BaseShippingFee       float64
	WeightRatePerKG       float64
	FreeShippingThreshold float64
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:   getEnv("RABBITMQ_QUEUE", "warehouse_shipments"),
		ChannelPoolSize: getEnvAsInt("CHANNEL_POOL_SIZE", 10),

		BaseShippingFee:       getEnvAsFloat("BASE_SHIPPING_FEE", 15.0),
		WeightRatePerKG:       getEnvAsFloat("WEIGHT_RATE_PER_KG", 10.0),
		FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 500.0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
