package services

import (
	"context"
	"encoding/json"
	"storefront_server/lib"
	"storefront_server/storage"
	"storefront_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService is the cart aggregate: it owns the line items and the derived
// totals, and mirrors every observable state to the snapshot store. Totals
// are always recomputed from the line items, never adjusted in place, so
// Total == Subtotal + Tax + Shipping holds at every return point.
//
// Persistence is fire-and-forget: a failed save is logged and the mutation
// still succeeds, matching the storefront's tolerance for losing a cart.
type CartService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  storage.CartStore
}

func NewCartService(logger *gecho.Logger, cfg *structs.Config, store storage.CartStore) *CartService {
	return &CartService{
		logger: logger,
		cfg:    cfg,
		store:  store,
	}
}

// Get loads the cart for the given id. A missing or unparseable snapshot
// yields a fresh empty cart; the parse failure is logged and the stored
// value discarded. No error escapes to the caller.
func (cs *CartService) Get(ctx context.Context, cartID string) *structs.Cart {
	cart := cs.load(ctx, cartID)
	cs.recomputeTotals(cart)
	return cart
}

// AddToCart adds quantity units of product to the cart. An existing line
// item for the same product accumulates; otherwise a new line item is
// appended. Quantity must be a positive integer.
func (cs *CartService) AddToCart(ctx context.Context, cartID string, product structs.Product, quantity int) (*structs.Cart, error) {
	if quantity <= 0 {
		return nil, lib.ErrInvalidQuantity
	}

	cart := cs.load(ctx, cartID)

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		cart.Items = append(cart.Items, structs.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Product:   product,
		})
	}

	cs.recomputeTotals(cart)
	cs.persist(ctx, cartID, cart)

	cs.logger.Debug("Item added to cart",
		gecho.Field("cart_id", cartID),
		gecho.Field("product", product.Slug),
		gecho.Field("quantity", quantity),
	)

	return cart, nil
}

// RemoveFromCart removes the line item for productID. Removing an absent
// product is a no-op, not an error.
func (cs *CartService) RemoveFromCart(ctx context.Context, cartID string, productID uuid.UUID) *structs.Cart {
	cart := cs.load(ctx, cartID)

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}

	if idx == -1 {
		cs.recomputeTotals(cart)
		return cart
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	cs.recomputeTotals(cart)
	cs.persist(ctx, cartID, cart)

	return cart
}

// UpdateQuantity replaces the stored quantity for productID. A quantity of
// zero or less removes the line item entirely; an absent product is a no-op.
func (cs *CartService) UpdateQuantity(ctx context.Context, cartID string, productID uuid.UUID, quantity int) *structs.Cart {
	if quantity <= 0 {
		return cs.RemoveFromCart(ctx, cartID, productID)
	}

	cart := cs.load(ctx, cartID)

	changed := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			changed = true
			break
		}
	}

	cs.recomputeTotals(cart)

	if changed {
		cs.persist(ctx, cartID, cart)
	}

	return cart
}

// ClearCart resets the cart to its empty state and drops the snapshot.
func (cs *CartService) ClearCart(ctx context.Context, cartID string) *structs.Cart {
	cart := emptyCart()
	cs.recomputeTotals(cart)

	if err := cs.store.Delete(ctx, cartID); err != nil {
		cs.logger.Warn("Failed to delete cart snapshot",
			gecho.Field("cart_id", cartID),
			gecho.Field("error", err),
		)
	}

	return cart
}

// IsInCart reports whether the cart holds a line item for productID.
func (cs *CartService) IsInCart(ctx context.Context, cartID string, productID uuid.UUID) bool {
	cart := cs.load(ctx, cartID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// load reads the snapshot for cartID, falling back to an empty cart when
// the snapshot is missing or corrupt. This is the only error path in the
// aggregate and it never surfaces past this point.
func (cs *CartService) load(ctx context.Context, cartID string) *structs.Cart {
	data, err := cs.store.Load(ctx, cartID)
	if err != nil {
		if err != storage.ErrSnapshotNotFound {
			cs.logger.Warn("Failed to load cart snapshot, starting empty",
				gecho.Field("cart_id", cartID),
				gecho.Field("error", err),
			)
		}
		return emptyCart()
	}

	cart := &structs.Cart{}
	if err := json.Unmarshal(data, cart); err != nil {
		cs.logger.Warn("Discarding unparseable cart snapshot",
			gecho.Field("cart_id", cartID),
			gecho.Field("error", err),
		)
		return emptyCart()
	}

	if cart.Items == nil {
		cart.Items = []structs.CartItem{}
	}

	return cart
}

func (cs *CartService) persist(ctx context.Context, cartID string, cart *structs.Cart) {
	cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		cs.logger.Error("Failed to serialize cart", gecho.Field("cart_id", cartID), gecho.Field("error", err))
		return
	}

	if err := cs.store.Save(ctx, cartID, data); err != nil {
		cs.logger.Warn("Failed to persist cart snapshot",
			gecho.Field("cart_id", cartID),
			gecho.Field("error", err),
		)
	}
}

// recomputeTotals derives subtotal, tax, shipping and total from the line
// items. Arithmetic stays exact; rounding for display is the caller's
// concern. An empty cart owes nothing, including shipping.
func (cs *CartService) recomputeTotals(cart *structs.Cart) {
	if len(cart.Items) == 0 {
		cart.Subtotal = decimal.Zero
		cart.Tax = decimal.Zero
		cart.Shipping = decimal.Zero
		cart.Total = decimal.Zero
		return
	}

	subtotal := decimal.Zero
	for i := range cart.Items {
		line := cart.Items[i].Product.Price.Mul(decimal.NewFromInt(int64(cart.Items[i].Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(cs.cfg.Cart.TaxRate)

	shipping := cs.cfg.Cart.FlatShippingRate
	if subtotal.GreaterThan(cs.cfg.Cart.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	cart.Subtotal = subtotal
	cart.Tax = tax
	cart.Shipping = shipping
	cart.Total = subtotal.Add(tax).Add(shipping)
}

func emptyCart() *structs.Cart {
	return &structs.Cart{
		Items:    []structs.CartItem{},
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Shipping: decimal.Zero,
		Total:    decimal.Zero,
	}
}
