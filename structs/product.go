package structs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry. The fixture set is built once at
// startup and never mutated at runtime.
type Product struct {
	ID          uuid.UUID         `json:"id"`
	Slug        string            `json:"slug"` // unique human-readable key
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"` // unit price in currency units
	Images      []ProductImage    `json:"images,omitempty"`
	Category    Category          `json:"category"`
	InStock     bool              `json:"in_stock"`
	Featured    bool              `json:"featured,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"` // open-ended key/value details
}

// ProductImage represents an image for a product
type ProductImage struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"` // optional, empty string if none
	IsPrimary bool   `json:"is_primary"`
}

// Category enum
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryAccessories Category = "accessories"
	CategoryHome        Category = "home"
)
