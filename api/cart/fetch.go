package cart

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetCart handles GET /cart
func (crm *CartRoutesManager) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cartID := crm.cartID(w, r)
	cart := crm.cartService.Get(ctx, cartID)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"cart": cart,
		}),
		gecho.Send(),
	)
}
