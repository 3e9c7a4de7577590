package checkout

import (
	"storefront_server/services"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CheckoutRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	checkoutService *services.CheckoutService
}

func NewCheckoutRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	checkoutService *services.CheckoutService,
) *CheckoutRoutesManager {
	return &CheckoutRoutesManager{
		logger:          logger,
		cfg:             cfg,
		checkoutService: checkoutService,
	}
}

func (ckm *CheckoutRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/checkout", ckm.CreateOrder)
}
