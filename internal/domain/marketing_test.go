package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeCatalogStats(t *testing.T) {
	products := []Product{
		{Brand: "Rolex", Category: "Watches", OriginalPrice: 1000000, DiscountedPrice: 750000, DiscountPercent: 25},
		{Brand: "Gucci", Category: "Bags", OriginalPrice: 200000, DiscountedPrice: 150000, DiscountPercent: 25},
		{Brand: "Rolex", Category: "Watches", OriginalPrice: 500000, DiscountedPrice: 400000, DiscountPercent: 20},
		{Brand: "Prada", Category: "Shoes", OriginalPrice: 100000, DiscountedPrice: 90000, DiscountPercent: 10},
		{Brand: "Dior", Category: "Bags", OriginalPrice: 300000, DiscountedPrice: 240000, DiscountPercent: 20},
	}

	stats := ComputeCatalogStats(products)

	// (2500 + 500 + 1000 + 100 + 600)
	assert.True(t, stats.TotalSavings.Equal(decimal.NewFromInt(4700)),
		"total savings = %s", stats.TotalSavings)
	assert.True(t, stats.AverageDiscount.Equal(decimal.NewFromInt(20)),
		"average discount = %s", stats.AverageDiscount)

	// бренды обрезаются до трёх первых уникальных
	assert.Equal(t, []string{"Rolex", "Gucci", "Prada"}, stats.Brands)
	assert.Equal(t, []string{"Watches", "Bags", "Shoes"}, stats.Categories)
}

func TestComputeCatalogStats_Empty(t *testing.T) {
	stats := ComputeCatalogStats(nil)

	assert.True(t, stats.TotalSavings.IsZero())
	assert.True(t, stats.AverageDiscount.IsZero())
	assert.Empty(t, stats.Brands)
	assert.Empty(t, stats.Categories)
}

func TestComputeCatalogStats_IgnoresBlankBrands(t *testing.T) {
	products := []Product{
		{Brand: "  ", Category: "Watches", DiscountPercent: 30},
		{Brand: "Cartier", Category: "", DiscountPercent: 10},
	}

	stats := ComputeCatalogStats(products)

	assert.Equal(t, []string{"Cartier"}, stats.Brands)
	assert.Equal(t, []string{"Watches"}, stats.Categories)
}

func TestProductSavings_NoNegative(t *testing.T) {
	p := Product{OriginalPrice: 100, DiscountedPrice: 150}
	assert.Zero(t, p.Savings())
}
