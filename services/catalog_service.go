package services

import (
	"context"
	"storefront_server/lib"
	"storefront_server/structs"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MonkyMars/gecho"
)

// CatalogService serves the fixture product set. It has no backing store;
// the only asynchronous behavior is a simulated fetch delay on List so
// consumers can exercise their loading states.
type CatalogService struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	products []structs.Product

	loading atomic.Bool

	mu      sync.Mutex
	lastErr error
}

func NewCatalogService(logger *gecho.Logger, cfg *structs.Config) *CatalogService {
	return &CatalogService{
		logger:   logger,
		cfg:      cfg,
		products: catalogFixture(),
	}
}

// List returns the full fixture set after the configured simulated delay.
// The returned slice is a copy; callers may not mutate the fixture.
func (cs *CatalogService) List(ctx context.Context) ([]structs.Product, error) {
	cs.loading.Store(true)
	defer cs.loading.Store(false)

	if err := cs.simulateFetch(ctx); err != nil {
		cs.setLastError(err)
		return nil, err
	}

	cs.setLastError(nil)

	out := make([]structs.Product, len(cs.products))
	copy(out, cs.products)

	cs.logger.Debug("Catalog listed", gecho.Field("count", len(out)))

	return out, nil
}

// FindBySlug returns the product with the given slug or lib.ErrNotFound.
// Slugs are unique within the fixture.
func (cs *CatalogService) FindBySlug(ctx context.Context, slug string) (*structs.Product, error) {
	for i := range cs.products {
		if cs.products[i].Slug == slug {
			p := cs.products[i]
			return &p, nil
		}
	}
	return nil, lib.ErrNotFound
}

// FilterByCategory returns all products in the given category, empty slice
// when nothing matches.
func (cs *CatalogService) FilterByCategory(ctx context.Context, category structs.Category) []structs.Product {
	out := []structs.Product{}
	for i := range cs.products {
		if cs.products[i].Category == category {
			out = append(out, cs.products[i])
		}
	}
	return out
}

// FilterFeatured returns the products flagged as featured.
func (cs *CatalogService) FilterFeatured(ctx context.Context) []structs.Product {
	out := []structs.Product{}
	for i := range cs.products {
		if cs.products[i].Featured {
			out = append(out, cs.products[i])
		}
	}
	return out
}

// IsLoading reports whether a List call is in flight.
func (cs *CatalogService) IsLoading() bool {
	return cs.loading.Load()
}

// LastError returns the error slot from the most recent List. The fixture
// never fails, so outside of context cancellation this stays nil.
func (cs *CatalogService) LastError() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.lastErr
}

func (cs *CatalogService) setLastError(err error) {
	cs.mu.Lock()
	cs.lastErr = err
	cs.mu.Unlock()
}

func (cs *CatalogService) simulateFetch(ctx context.Context) error {
	delay := cs.cfg.Catalog.FetchDelay
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
