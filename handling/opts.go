package handling

import (
	"net/http"
	"storefront_server/structs"
	"strconv"
)

// CatalogListOptions are the filters accepted by the catalog listing
// endpoint. Nil pointer fields mean "don't filter".
type CatalogListOptions struct {
	Category structs.Category `json:"category,omitempty"`
	Featured *bool            `json:"featured,omitempty"`
	InStock  *bool            `json:"in_stock,omitempty"`
}

// ParseCatalogListOptions parses HTTP query parameters into CatalogListOptions
func ParseCatalogListOptions(r *http.Request) (*CatalogListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &CatalogListOptions{}, nil
	}

	opts := &CatalogListOptions{}

	if category := query.Get("category"); category != "" {
		opts.Category = structs.Category(category)
	}

	if featured := query.Get("featured"); featured != "" {
		valBool, err := strconv.ParseBool(featured)
		if err != nil {
			return nil, err
		}
		opts.Featured = &valBool
	}

	if inStock := query.Get("in_stock"); inStock != "" {
		valBool, err := strconv.ParseBool(inStock)
		if err != nil {
			return nil, err
		}
		opts.InStock = &valBool
	}

	return opts, nil
}

// Apply filters products by the parsed options.
func (opts *CatalogListOptions) Apply(products []structs.Product) []structs.Product {
	out := []structs.Product{}
	for _, p := range products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Featured != nil && p.Featured != *opts.Featured {
			continue
		}
		if opts.InStock != nil && p.InStock != *opts.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}
