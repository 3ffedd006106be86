package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID              int64
	Name            string
	Brand           string
	Category        string
	OriginalPrice   int64 // Цены хранятся в центах
	DiscountedPrice int64
	DiscountPercent int
	Stock           int
	ImageKey        string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	IsArchived      bool
}

func NewProduct(name, brand, category string, originalPrice, discountedPrice int64, discountPercent, stock int, imageKey string) *Product {
	return &Product{
		Name:            name,
		Brand:           brand,
		Category:        category,
		OriginalPrice:   originalPrice,
		DiscountedPrice: discountedPrice,
		DiscountPercent: discountPercent,
		Stock:           stock,
		ImageKey:        imageKey,
	}
}

// Savings возвращает абсолютную скидку на товар в центах.
func (p *Product) Savings() int64 {
	if p.OriginalPrice <= p.DiscountedPrice {
		return 0
	}
	return p.OriginalPrice - p.DiscountedPrice
}
