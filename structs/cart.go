package structs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product-and-quantity pair within a cart. Product carries
// the catalog snapshot taken at the time of add, so later fixture changes
// never reprice an existing cart.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"` // always >= 1; items at 0 are removed
	Product   Product   `json:"product"`
}

// Cart holds the line items in insertion order plus the derived totals.
// The totals are recomputed after every mutation and never set directly:
// Total == Subtotal + Tax + Shipping at all observable times.
type Cart struct {
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AddCartItemRequest struct {
	ProductSlug string `json:"product_slug" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// Quantity <= 0 is accepted here and treated as removal.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
