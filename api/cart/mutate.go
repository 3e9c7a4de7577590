package cart

import (
	"errors"
	"net/http"
	"storefront_server/lib"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AddItem handles POST /cart/items
func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.AddCartItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := crm.catalogService.FindBySlug(ctx, body.ProductSlug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		crm.logger.Error("Failed to resolve product for cart add", "slug", body.ProductSlug, "error", err)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.addFailed"),
			gecho.Send(),
		)
		return
	}

	cartID := crm.cartID(w, r)

	cart, err := crm.cartService.AddToCart(ctx, cartID, *product, body.Quantity)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidQuantity) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.cart.invalidQuantity"),
				gecho.Send(),
			)
			return
		}

		crm.logger.Error("Failed to add item to cart", "cart_id", cartID, "error", err)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.addFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"cart": cart,
		}),
		gecho.Send(),
	)
}

// UpdateItem handles PATCH /cart/items/{productId}. A quantity of zero or
// less removes the item.
func (crm *CartRoutesManager) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := crm.parseProductID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCartItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	cartID := crm.cartID(w, r)
	cart := crm.cartService.UpdateQuantity(ctx, cartID, productID, body.Quantity)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"cart": cart,
		}),
		gecho.Send(),
	)
}

// RemoveItem handles DELETE /cart/items/{productId}. Removing an item that
// is not in the cart is not an error.
func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := crm.parseProductID(w, r)
	if !ok {
		return
	}

	cartID := crm.cartID(w, r)
	cart := crm.cartService.RemoveFromCart(ctx, cartID, productID)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"cart": cart,
		}),
		gecho.Send(),
	)
}

// ClearCart handles DELETE /cart
func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cartID := crm.cartID(w, r)
	cart := crm.cartService.ClearCart(ctx, cartID)

	gecho.Success(w,
		gecho.WithMessage("success.cart.cleared"),
		gecho.WithData(map[string]any{
			"cart": cart,
		}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) parseProductID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "productId")

	id, err := uuid.Parse(idStr)
	if err != nil {
		crm.logger.Warn("Invalid product ID format", "id", idStr, "error", err)
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidProductId"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		crm.logger.Warn("Product ID not provided")
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.productIdRequired"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}

	return id, true
}
