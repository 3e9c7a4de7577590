package services

import (
	"storefront_server/storage"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CatalogService  *CatalogService
	CartService     *CartService
	CheckoutService *CheckoutService
	EmailService    *EmailService
	HealthService   *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store storage.CartStore) *ServiceManager {
	catalogService := NewCatalogService(logger, cfg)
	cartService := NewCartService(logger, cfg, store)
	emailService := NewEmailService(logger, cfg)
	checkoutService := NewCheckoutService(logger, cfg, cartService, catalogService, emailService)
	healthService := NewHealthService(logger, store)

	return &ServiceManager{
		CatalogService:  catalogService,
		CartService:     cartService,
		CheckoutService: checkoutService,
		EmailService:    emailService,
		HealthService:   healthService,
	}
}
