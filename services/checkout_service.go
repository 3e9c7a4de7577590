package services

import (
	"context"
	"errors"
	"fmt"
	"storefront_server/lib"
	"storefront_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CheckoutService turns the current cart into an order. There is no payment
// step; checkout validates the cart against the catalog, freezes the totals
// into an Order, optionally emails a confirmation and clears the cart.
type CheckoutService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	cartService    *CartService
	catalogService *CatalogService
	emailService   *EmailService
}

func NewCheckoutService(
	logger *gecho.Logger,
	cfg *structs.Config,
	cartService *CartService,
	catalogService *CatalogService,
	emailService *EmailService,
) *CheckoutService {
	return &CheckoutService{
		logger:         logger,
		cfg:            cfg,
		cartService:    cartService,
		catalogService: catalogService,
		emailService:   emailService,
	}
}

// CreateOrder checks out the cart identified by cartID. Every line item is
// revalidated against the catalog; a product that vanished or went out of
// stock aborts the checkout before anything is mutated.
func (cks *CheckoutService) CreateOrder(ctx context.Context, cartID string, req *structs.CheckoutRequest) (*structs.Order, error) {
	cart := cks.cartService.Get(ctx, cartID)
	if len(cart.Items) == 0 {
		return nil, lib.ErrCartEmpty
	}

	for _, item := range cart.Items {
		current, err := cks.catalogService.FindBySlug(ctx, item.Product.Slug)
		if err != nil {
			if errors.Is(err, lib.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", lib.ErrProductUnavailable, item.Product.Name)
			}
			return nil, err
		}
		if !current.InStock {
			return nil, fmt.Errorf("%w: %s", lib.ErrProductUnavailable, current.Name)
		}
	}

	country := req.Country
	if country == "" {
		country = "US"
	}

	order := &structs.Order{
		Id:          uuid.New(),
		OrderNumber: lib.GenerateOrderNumber(),
		Status:      structs.OrderStatusPending,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		Zip:         req.Zip,
		Country:     country,
		Items:       cart.Items,
		Subtotal:    cart.Subtotal,
		Tax:         cart.Tax,
		Shipping:    cart.Shipping,
		Total:       cart.Total,
		CreatedAt:   time.Now().UTC(),
	}

	// Confirmation email is best-effort; the order stands either way.
	if cks.emailService.Enabled() {
		if err := cks.emailService.SendOrderConfirmation(order); err != nil {
			cks.logger.Warn("Failed to send order confirmation",
				gecho.Field("order_number", order.OrderNumber),
				gecho.Field("error", err),
			)
		}
	}

	cks.cartService.ClearCart(ctx, cartID)

	cks.logger.Info("Order created",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("items", len(order.Items)),
		gecho.Field("total", order.Total.StringFixed(2)),
	)

	return order, nil
}
