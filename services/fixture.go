package services

import (
	"storefront_server/structs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogFixture returns the hardcoded product set the storefront sells.
// IDs are fixed so carts persisted across restarts keep pointing at the
// same products.
func catalogFixture() []structs.Product {
	return []structs.Product{
		{
			ID:          uuid.MustParse("5b1f3f3e-8a44-4f7e-9c5d-0d0a1f6b2c01"),
			Slug:        "aurora-wireless-headphones",
			Name:        "Aurora Wireless Headphones",
			Description: "Over-ear wireless headphones with active noise cancelling and a 30-hour battery.",
			Price:       decimal.RequireFromString("129.99"),
			Images: []structs.ProductImage{
				{URL: "/images/products/aurora-headphones-front.jpg", AltText: "Aurora headphones, front view", IsPrimary: true},
				{URL: "/images/products/aurora-headphones-side.jpg", AltText: "Aurora headphones, side view"},
			},
			Category: structs.CategoryElectronics,
			InStock:  true,
			Featured: true,
			Attributes: map[string]string{
				"battery":      "30h",
				"connectivity": "Bluetooth 5.3",
				"weight":       "254g",
			},
		},
		{
			ID:          uuid.MustParse("0c9a7e2d-14b5-4d9a-b7e3-6a2f8c4d1e02"),
			Slug:        "solstice-smart-watch",
			Name:        "Solstice Smart Watch",
			Description: "Fitness tracking, sleep insights and week-long battery in a stainless steel case.",
			Price:       decimal.RequireFromString("199.00"),
			Images: []structs.ProductImage{
				{URL: "/images/products/solstice-watch.jpg", AltText: "Solstice smart watch", IsPrimary: true},
			},
			Category: structs.CategoryElectronics,
			InStock:  true,
			Featured: true,
			Attributes: map[string]string{
				"battery":          "7 days",
				"water_resistance": "5 ATM",
			},
		},
		{
			ID:          uuid.MustParse("7d4e9b1a-3c2f-4e8b-a6d5-9f0e2b7c3a03"),
			Slug:        "trailblazer-backpack",
			Name:        "Trailblazer Backpack",
			Description: "Weatherproof 28L daypack with a padded laptop sleeve and hidden passport pocket.",
			Price:       decimal.RequireFromString("74.50"),
			Images: []structs.ProductImage{
				{URL: "/images/products/trailblazer-backpack.jpg", AltText: "Trailblazer backpack", IsPrimary: true},
			},
			Category: structs.CategoryAccessories,
			InStock:  true,
			Featured: true,
			Attributes: map[string]string{
				"capacity": "28L",
				"material": "recycled nylon",
			},
		},
		{
			ID:          uuid.MustParse("2e8c5d0f-6b1a-4c3e-8f9d-1a7b4e2c6d04"),
			Slug:        "voyager-leather-wallet",
			Name:        "Voyager Leather Wallet",
			Description: "Slim bifold wallet in full-grain leather with RFID shielding.",
			Price:       decimal.RequireFromString("24.99"),
			Images: []structs.ProductImage{
				{URL: "/images/products/voyager-wallet.jpg", AltText: "Voyager leather wallet", IsPrimary: true},
			},
			Category: structs.CategoryAccessories,
			InStock:  true,
			Attributes: map[string]string{
				"material": "full-grain leather",
			},
		},
		{
			ID:          uuid.MustParse("4a6b8c2e-9d3f-4b5a-8c1e-7f2d5a9b3e05"),
			Slug:        "linen-throw-blanket",
			Name:        "Linen Throw Blanket",
			Description: "Stonewashed linen throw, woven in small batches and pre-shrunk.",
			Price:       decimal.RequireFromString("39.99"),
			Images: []structs.ProductImage{
				{URL: "/images/products/linen-throw.jpg", AltText: "Linen throw blanket", IsPrimary: true},
			},
			Category: structs.CategoryHome,
			InStock:  true,
			Attributes: map[string]string{
				"size":     "130x170cm",
				"material": "100% linen",
			},
		},
		{
			ID:          uuid.MustParse("8f1d3a5c-0e7b-4d2f-9a8c-3b6e1d4f7a06"),
			Slug:        "ceramic-pour-over-set",
			Name:        "Ceramic Pour-Over Set",
			Description: "Hand-glazed dripper and carafe for slow mornings. Currently being restocked.",
			Price:       decimal.RequireFromString("54.00"),
			Images: []structs.ProductImage{
				{URL: "/images/products/pour-over-set.jpg", AltText: "Ceramic pour-over set", IsPrimary: true},
			},
			Category: structs.CategoryHome,
			InStock:  false,
			Attributes: map[string]string{
				"capacity": "600ml",
			},
		},
	}
}
