// Package storage provides the cart snapshot store: a key-to-blob port with
// a file-backed default and a redis-backed alternative. The aggregate logic
// never touches a backend directly, it only sees CartStore.
package storage

import (
	"context"
	"errors"
	"fmt"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
)

// ErrSnapshotNotFound is returned by Load when no snapshot exists for a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// CartStore persists serialized cart snapshots keyed by cart id.
type CartStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New builds the store selected by CART_STORE_BACKEND.
func New(logger *gecho.Logger, cfg *structs.Config) (CartStore, error) {
	switch cfg.Cart.StoreBackend {
	case "file", "":
		return NewFileStore(logger, cfg.Cart.StorePath)
	case "redis":
		return NewRedisStore(logger, cfg), nil
	default:
		return nil, fmt.Errorf("unknown cart store backend: %q", cfg.Cart.StoreBackend)
	}
}
