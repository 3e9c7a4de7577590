package checkout

import (
	"errors"
	"net/http"
	"storefront_server/lib"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /checkout: validates the customer details,
// freezes the cart into an order and clears the cart.
func (ckm *CheckoutRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.checkout.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	cartID, err := lib.GetCookieValue(ckm.cfg.Cart.CookieName, r)
	if err != nil || cartID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.checkout.cartEmpty"),
			gecho.Send(),
		)
		return
	}

	order, err := ckm.checkoutService.CreateOrder(ctx, cartID, body)
	if err != nil {
		if errors.Is(err, lib.ErrCartEmpty) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.checkout.cartEmpty"),
				gecho.Send(),
			)
			return
		}

		if errors.Is(err, lib.ErrProductUnavailable) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.checkout.productUnavailable"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		ckm.logger.Error("Failed to create order", "cart_id", cartID, "error", err)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.checkout.creationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	// The cart is gone; expire the session cookie alongside it.
	lib.ClearCookie(ckm.cfg.Cart.CookieName, w)

	gecho.Success(w,
		gecho.WithMessage("success.checkout.orderCreated"),
		gecho.WithData(map[string]any{
			"order_number": order.OrderNumber,
			"order_id":     order.Id,
			"status":       order.Status,
			"total":        order.Total,
		}),
		gecho.Send(),
	)
}
