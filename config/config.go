package config

import (
	"storefront_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Storefront_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8082"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Catalog: &structs.CatalogConfig{
				FetchDelay: getEnvAsTimeDuration("CATALOG_FETCH_DELAY", 300*time.Millisecond),
			},
			Cart: &structs.CartConfig{
				TaxRate:               getEnvAsDecimal("CART_TAX_RATE", "0.08"),
				FreeShippingThreshold: getEnvAsDecimal("CART_FREE_SHIPPING_THRESHOLD", "100"),
				FlatShippingRate:      getEnvAsDecimal("CART_FLAT_SHIPPING_RATE", "10"),
				StoreBackend:          getEnvAsString("CART_STORE_BACKEND", "file"),
				StorePath:             getEnvAsString("CART_STORE_PATH", "./data/carts"),
				SnapshotTTL:           getEnvAsTimeDuration("CART_SNAPSHOT_TTL", 30*24*time.Hour),
				CookieName:            getEnvAsString("CART_COOKIE_NAME", "cart_id"),
				CookieExpiry:          getEnvAsTimeDuration("CART_COOKIE_EXPIRY", 30*24*time.Hour),
			},
			Cache: &structs.CacheConfig{
				Address:  getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
				Username: getEnvAsString("CACHE_USERNAME", ""),
				Password: getEnvAsString("CACHE_PASSWORD", ""),
				DB:       getEnvAsInt("CACHE_DB", 0),

				PoolSize:     getEnvAsInt("CACHE_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("CACHE_MIN_IDLE_CONNS", 2),
				MaxIdleConns: getEnvAsInt("CACHE_MAX_IDLE_CONNS", 5),
				PoolTimeout:  getEnvAsTimeDuration("CACHE_POOL_TIMEOUT", 4*time.Second),
				IdleTimeout:  getEnvAsTimeDuration("CACHE_IDLE_TIMEOUT", 5*time.Minute),

				DialTimeout:  getEnvAsTimeDuration("CACHE_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getEnvAsTimeDuration("CACHE_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getEnvAsTimeDuration("CACHE_WRITE_TIMEOUT", 3*time.Second),

				MaxRetries:      getEnvAsInt("CACHE_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("CACHE_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("CACHE_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			},
			Email: &structs.EmailConfig{
				ApiKey:    getEnvAsString("EMAIL_API_KEY", ""),
				From:      getEnvAsString("EMAIL_FROM", "orders@storefront.example"),
				ContactTo: getEnvAsString("EMAIL_CONTACT_TO", "support@storefront.example"),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", false),

				GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL_LIMIT", 120),
				GeneralWindow: getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),

				ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE_LIMIT", 60),
				ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", time.Minute),

				SubmitLimit:  getEnvAsInt("RATE_LIMIT_SUBMIT_LIMIT", 10),
				SubmitWindow: getEnvAsTimeDuration("RATE_LIMIT_SUBMIT_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
