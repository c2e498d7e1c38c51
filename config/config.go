package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisCatalogDB int    `mapstructure:"REDIS_CATALOG_DB"`

	// Pricing engine configuration.
	PricingEngineURL string `mapstructure:"PRICING_ENGINE_URL"`
	PricingTimeoutMS int    `mapstructure:"PRICING_TIMEOUT_MS"`

	// Minutes of inactivity before a session's cart state is discarded.
	CartSessionTTLMin int `mapstructure:"CART_SESSION_TTL_MIN"`

	// VIP plan catalog cache lifetime in minutes.
	PlanCacheTTLMin int `mapstructure:"PLAN_CACHE_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "homigo")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CATALOG_DB", 1)
	viper.SetDefault("PRICING_ENGINE_URL", "http://localhost:9090")
	viper.SetDefault("PRICING_TIMEOUT_MS", 8000)
	viper.SetDefault("CART_SESSION_TTL_MIN", 30)
	viper.SetDefault("PLAN_CACHE_TTL_MIN", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// PricingTimeout returns the per-request deadline for pricing engine calls.
func PricingTimeout() time.Duration {
	ms := AppConfig.PricingTimeoutMS
	if ms <= 0 {
		ms = 8000
	}
	return time.Duration(ms) * time.Millisecond
}

// CartSessionTTL returns how long an idle cart session is retained.
func CartSessionTTL() time.Duration {
	min := AppConfig.CartSessionTTLMin
	if min <= 0 {
		min = 30
	}
	return time.Duration(min) * time.Minute
}

// PlanCacheTTL returns the VIP plan catalog cache expiry.
func PlanCacheTTL() time.Duration {
	min := AppConfig.PlanCacheTTLMin
	if min <= 0 {
		min = 15
	}
	return time.Duration(min) * time.Minute
}
