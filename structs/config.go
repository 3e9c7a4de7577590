package structs

import (
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Catalog   *CatalogConfig
	Cart      *CartConfig
	Cache     *CacheConfig
	Email     *EmailConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // Storefront
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type CatalogConfig struct {
	// FetchDelay simulates upstream latency on catalog loads so the
	// storefront can exercise its loading state.
	FetchDelay time.Duration
}

type CartConfig struct {
	TaxRate               decimal.Decimal // e.g. 0.08
	FreeShippingThreshold decimal.Decimal // subtotal strictly above this ships free
	FlatShippingRate      decimal.Decimal // applied otherwise
	StoreBackend          string          // file or redis
	StorePath             string          // file backend directory
	SnapshotTTL           time.Duration   // redis backend only, 0 = no expiry
	CookieName            string
	CookieExpiry          time.Duration
}

type CacheConfig struct {
	Address  string
	Username string
	Password string
	DB       int

	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type EmailConfig struct {
	ApiKey    string // empty disables outbound email
	From      string
	ContactTo string // inbox for contact form relays
}

type RateLimitConfig struct {
	Enabled bool

	GeneralLimit  int
	GeneralWindow time.Duration

	// Expensive read operations (catalog listings)
	ExpensiveLimit  int
	ExpensiveWindow time.Duration

	// Checkout and contact form submissions
	SubmitLimit  int
	SubmitWindow time.Duration
}
