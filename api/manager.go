package api

import (
	"storefront_server/api/cart"
	"storefront_server/api/checkout"
	"storefront_server/api/health"
	"storefront_server/api/pages"
	"storefront_server/api/products"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	cartRoutes     *cart.CartRoutesManager
	checkoutRoutes *checkout.CheckoutRoutesManager
	pagesRoutes    *pages.PagesRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(
	productRoutes *products.ProductRoutesManager,
	cartRoutes *cart.CartRoutesManager,
	checkoutRoutes *checkout.CheckoutRoutesManager,
	pagesRoutes *pages.PagesRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		productRoutes:  productRoutes,
		cartRoutes:     cartRoutes,
		checkoutRoutes: checkoutRoutes,
		pagesRoutes:    pagesRoutes,
		healthRoutes:   healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.checkoutRoutes.RegisterRoutes(r)
	rm.pagesRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
