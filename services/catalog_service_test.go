package services_test

import (
	"context"
	"testing"
	"time"

	"storefront_server/lib"
	"storefront_server/services"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(fetchDelay time.Duration) *services.CatalogService {
	cfg := testConfig()
	cfg.Catalog.FetchDelay = fetchDelay
	return services.NewCatalogService(gecho.NewDefaultLogger(), cfg)
}

func TestCatalogList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the full fixture set", func(t *testing.T) {
		cs := newTestCatalogService(0)

		products, err := cs.List(ctx)
		require.NoError(t, err)

		assert.Len(t, products, 6)
		assert.Nil(t, cs.LastError())
		assert.False(t, cs.IsLoading())
	})

	t.Run("slugs are unique", func(t *testing.T) {
		cs := newTestCatalogService(0)

		products, err := cs.List(ctx)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, p := range products {
			assert.Falsef(t, seen[p.Slug], "duplicate slug %s", p.Slug)
			seen[p.Slug] = true
		}
	})

	t.Run("cancelled context aborts the simulated fetch", func(t *testing.T) {
		cs := newTestCatalogService(5 * time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := cs.List(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, cs.LastError(), context.Canceled)
	})
}

func TestCatalogFindBySlug(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalogService(0)

	t.Run("found", func(t *testing.T) {
		p, err := cs.FindBySlug(ctx, "aurora-wireless-headphones")
		require.NoError(t, err)
		assert.Equal(t, "Aurora Wireless Headphones", p.Name)
		assert.True(t, p.InStock)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := cs.FindBySlug(ctx, "no-such-product")
		assert.ErrorIs(t, err, lib.ErrNotFound)
	})
}

func TestCatalogFilters(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalogService(0)

	t.Run("by category", func(t *testing.T) {
		electronics := cs.FilterByCategory(ctx, structs.CategoryElectronics)
		require.Len(t, electronics, 2)
		for _, p := range electronics {
			assert.Equal(t, structs.CategoryElectronics, p.Category)
		}
	})

	t.Run("unknown category yields empty slice", func(t *testing.T) {
		none := cs.FilterByCategory(ctx, structs.Category("vehicles"))
		assert.Empty(t, none)
		assert.NotNil(t, none)
	})

	t.Run("featured", func(t *testing.T) {
		featured := cs.FilterFeatured(ctx)
		require.NotEmpty(t, featured)
		for _, p := range featured {
			assert.True(t, p.Featured)
		}
	})
}
