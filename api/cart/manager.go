package cart

import (
	"net/http"
	"storefront_server/lib"
	"storefront_server/services"
	"storefront_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CartRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	cartService *services.CartService,
	catalogService *services.CatalogService,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:         logger,
		cfg:            cfg,
		cartService:    cartService,
		catalogService: catalogService,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/cart", crm.GetCart)
	r.Delete("/cart", crm.ClearCart)
	r.Post("/cart/items", crm.AddItem)
	r.Patch("/cart/items/{productId}", crm.UpdateItem)
	r.Delete("/cart/items/{productId}", crm.RemoveItem)
}

// cartID returns the caller's cart id from the session cookie, minting a
// fresh one when none exists yet. The id is an opaque uuid, not an
// authenticated identity.
func (crm *CartRoutesManager) cartID(w http.ResponseWriter, r *http.Request) string {
	if val, err := lib.GetCookieValue(crm.cfg.Cart.CookieName, r); err == nil && val != "" {
		return val
	}

	id := uuid.NewString()
	lib.SetCookie(crm.cfg.Cart.CookieName, id, time.Now().Add(crm.cfg.Cart.CookieExpiry), w)
	return id
}
