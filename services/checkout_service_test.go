package services_test

import (
	"context"
	"testing"

	"storefront_server/lib"
	"storefront_server/services"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheckoutEnv(t *testing.T) (*services.CheckoutService, *services.CartService, *services.CatalogService) {
	t.Helper()

	logger := gecho.NewDefaultLogger()
	cfg := testConfig()

	catalog := services.NewCatalogService(logger, cfg)
	cart := services.NewCartService(logger, cfg, newMemoryStore())
	email := services.NewEmailService(logger, cfg) // no API key, sending disabled
	checkout := services.NewCheckoutService(logger, cfg, cart, catalog, email)

	return checkout, cart, catalog
}

func checkoutRequest() *structs.CheckoutRequest {
	return &structs.CheckoutRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Address: "12 Analytical Lane",
		City:    "London",
		Zip:     "EC1A1",
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes the cart into an order and clears it", func(t *testing.T) {
		checkout, cart, catalog := newTestCheckoutEnv(t)

		p, err := catalog.FindBySlug(ctx, "aurora-wireless-headphones")
		require.NoError(t, err)
		before, err := cart.AddToCart(ctx, "c1", *p, 2)
		require.NoError(t, err)

		order, err := checkout.CreateOrder(ctx, "c1", checkoutRequest())
		require.NoError(t, err)

		assert.Equal(t, structs.OrderStatusPending, order.Status)
		assert.Regexp(t, `^SF-[A-Z0-9]{6}$`, order.OrderNumber)
		assert.Equal(t, "US", order.Country)
		require.Len(t, order.Items, 1)
		assert.True(t, order.Total.Equal(before.Total))

		// Cart is empty afterwards.
		assert.Empty(t, cart.Get(ctx, "c1").Items)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		checkout, _, _ := newTestCheckoutEnv(t)

		_, err := checkout.CreateOrder(ctx, "c1", checkoutRequest())
		assert.ErrorIs(t, err, lib.ErrCartEmpty)
	})

	t.Run("rejects a cart holding an out-of-stock product", func(t *testing.T) {
		checkout, cart, catalog := newTestCheckoutEnv(t)

		p, err := catalog.FindBySlug(ctx, "ceramic-pour-over-set")
		require.NoError(t, err)
		require.False(t, p.InStock)

		// The aggregate itself doesn't gate on stock; checkout does.
		_, err = cart.AddToCart(ctx, "c1", *p, 1)
		require.NoError(t, err)

		_, err = checkout.CreateOrder(ctx, "c1", checkoutRequest())
		assert.ErrorIs(t, err, lib.ErrProductUnavailable)

		// The cart survives a failed checkout.
		assert.Len(t, cart.Get(ctx, "c1").Items, 1)
	})

	t.Run("rejects a cart holding a product missing from the catalog", func(t *testing.T) {
		checkout, cart, _ := newTestCheckoutEnv(t)

		_, err := cart.AddToCart(ctx, "c1", testProduct("10.00"), 1)
		require.NoError(t, err)

		_, err = checkout.CreateOrder(ctx, "c1", checkoutRequest())
		assert.ErrorIs(t, err, lib.ErrProductUnavailable)
	})
}
