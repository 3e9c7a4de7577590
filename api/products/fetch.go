package products

import (
	"errors"
	"net/http"
	"storefront_server/handling"
	"storefront_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products with category/featured/stock filters
func (p *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters into options
	opts, err := handling.ParseCatalogListOptions(r)
	if err != nil {
		p.logger.Warn("Invalid query parameters", "error", err)
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	products, err := p.catalogService.List(ctx)
	if err != nil {
		p.logger.Error("Failed to fetch products", "error", err)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	filtered := opts.Apply(products)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": filtered,
			"filters":  opts,
			"meta": map[string]any{
				"count": len(filtered),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductBySlug handles GET /products/{slug} to fetch a single product
func (p *ProductRoutesManager) FetchProductBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		p.logger.Warn("Product slug not provided")
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.slugRequired"),
			gecho.Send(),
		)
		return
	}

	product, err := p.catalogService.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		p.logger.Error("Failed to fetch product by slug", "slug", slug, "error", err)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchFeaturedProducts handles GET /products/featured
func (p *ProductRoutesManager) FetchFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured := p.catalogService.FilterFeatured(ctx)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": featured,
			"meta": map[string]any{
				"count": len(featured),
			},
		}),
		gecho.Send(),
	)
}
