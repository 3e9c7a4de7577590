package lib

import "errors"

// Catalog errors
var (
	ErrNotFound = errors.New("not found")
)

// Cart errors
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Checkout errors
var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrProductUnavailable = errors.New("product is no longer available")
)
