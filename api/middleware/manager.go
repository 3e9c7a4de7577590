package middleware

import (
	"context"
	"storefront_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// Limiter is the counter backing rate limiting. The redis cart store
// implements it; with a file store there is no limiter and rate limiting
// is skipped.
type Limiter interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (int, error)
}

type Middleware struct {
	cfg     *structs.Config
	logger  *gecho.Logger
	limiter Limiter
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, limiter Limiter) *Middleware {
	return &Middleware{
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
	}
}
