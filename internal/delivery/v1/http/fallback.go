package http

import "github.com/thriftysouq/go-backend/internal/domain"

// Статический контент на случай недоступности AI-провайдеров.
// Витрина не должна оставаться без баннера из-за внешнего сбоя.

func fallbackHeroBanner() *domain.MarketingContent {
	return &domain.MarketingContent{
		Badge:          "Exclusive Deals",
		MainTitle:      "Luxury",
		HighlightTitle: "For Less",
		Subtitle:       "Authentic designer pieces",
		Description:    "Hand-picked luxury at prices that make sense.",
		ButtonText:     "Shop Now",
		FooterText:     "Free shipping on orders over $1000",
	}
}

func fallbackAnalysis() *domain.ProductAnalysis {
	return &domain.ProductAnalysis{
		LuxuryScore:    75,
		DiscountScore:  70,
		TargetAudience: "Value-conscious luxury shoppers",
		SellingPoints:  []string{"Authentic designer brands", "Significant discounts"},
		CompetitiveAdvantages: []string{
			"Curated selection",
			"Verified authenticity",
		},
		EmotionalHooks: []string{"Own the brands you love for less"},
	}
}

func fallbackProductCopy() *domain.ProductCopy {
	return &domain.ProductCopy{
		ShortDescription: "A standout designer piece at an exceptional price.",
		LongDescription:  "An authentic item from our curated luxury collection, now available at a substantial discount.",
		SellingPoints:    []string{"Verified authenticity", "Limited stock"},
		UrgencyText:      "Only a few left in stock",
	}
}
