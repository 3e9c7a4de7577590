package cart_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	cartapi "storefront_server/api/cart"
	"storefront_server/services"
	"storefront_server/storage"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{Environment: "development"},
		Cart: &structs.CartConfig{
			TaxRate:               decimal.RequireFromString("0.08"),
			FreeShippingThreshold: decimal.RequireFromString("100"),
			FlatShippingRate:      decimal.RequireFromString("10"),
			CookieName:            "cart_id",
		},
		Catalog: &structs.CatalogConfig{},
		Email:   &structs.EmailConfig{},
	}
}

func newTestRouter(t *testing.T) (chi.Router, *services.CatalogService) {
	t.Helper()

	logger := gecho.NewDefaultLogger()
	cfg := testConfig()

	store, err := storage.NewFileStore(logger, t.TempDir())
	require.NoError(t, err)

	catalog := services.NewCatalogService(logger, cfg)
	cartService := services.NewCartService(logger, cfg, store)

	r := chi.NewRouter()
	cartapi.NewCartRoutesManager(logger, cfg, cartService, catalog).RegisterRoutes(r)

	return r, catalog
}

// cartCookie digs the minted cart id cookie out of a response.
func cartCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "cart_id" {
			return c
		}
	}
	t.Fatal("no cart_id cookie set")
	return nil
}

func addItemBody(t *testing.T, slug string, quantity int) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(structs.AddCartItemRequest{ProductSlug: slug, Quantity: quantity})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

// cartFromResponse unwraps the {"data":{"cart":{...}}} envelope.
func cartFromResponse(t *testing.T, w *httptest.ResponseRecorder) *structs.Cart {
	t.Helper()
	var resp struct {
		Data struct {
			Cart structs.Cart `json:"cart"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return &resp.Data.Cart
}

func TestAddItemHandler(t *testing.T) {
	t.Run("adds a fixture product and mints a cart cookie", func(t *testing.T) {
		router, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/cart/items", addItemBody(t, "voyager-leather-wallet", 2))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, cartCookie(t, w).Value)

		cart := cartFromResponse(t, w)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("49.98")))
	})

	t.Run("unknown product yields 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/cart/items", addItemBody(t, "no-such-product", 1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("zero quantity yields 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/cart/items", addItemBody(t, "voyager-leather-wallet", 0))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json yields 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartSessionFlow(t *testing.T) {
	router, catalog := newTestRouter(t)

	// Add an item; keep the minted cookie.
	r := httptest.NewRequest(http.MethodPost, "/cart/items", addItemBody(t, "linen-throw-blanket", 1))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := cartCookie(t, w)

	// The cart survives across requests with the same cookie.
	r = httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	cart := cartFromResponse(t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "linen-throw-blanket", cart.Items[0].Product.Slug)

	// Update the quantity down to zero, removing the item.
	p, err := catalog.FindBySlug(r.Context(), "linen-throw-blanket")
	require.NoError(t, err)

	body, _ := json.Marshal(structs.UpdateCartItemRequest{Quantity: 0})
	r = httptest.NewRequest(http.MethodPatch, "/cart/items/"+p.ID.String(), bytes.NewBuffer(body))
	r.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartFromResponse(t, w).Items)

	// A different client gets its own empty cart.
	r = httptest.NewRequest(http.MethodGet, "/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartFromResponse(t, w).Items)
}

func TestRemoveAndClearHandlers(t *testing.T) {
	router, catalog := newTestRouter(t)

	r := httptest.NewRequest(http.MethodPost, "/cart/items", addItemBody(t, "trailblazer-backpack", 1))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := cartCookie(t, w)

	t.Run("invalid product id yields 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodDelete, "/cart/items/not-a-uuid", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("removing an item succeeds", func(t *testing.T) {
		p, err := catalog.FindBySlug(r.Context(), "trailblazer-backpack")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodDelete, "/cart/items/"+p.ID.String(), nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, cartFromResponse(t, w).Items)
	})

	t.Run("clearing an already empty cart succeeds", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodDelete, "/cart", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, cartFromResponse(t, w).Items)
	})
}
