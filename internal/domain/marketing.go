package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductAnalysis — результат AI-анализа каталога.
// Эфемерный: не сохраняется в БД, пересчитывается на каждый запрос
// (кроме короткоживущего кэша в Redis).
type ProductAnalysis struct {
	LuxuryScore           int      `json:"luxuryScore"`   // 0-100
	DiscountScore         int      `json:"discountScore"` // 0-100
	TargetAudience        string   `json:"targetAudience"`
	SellingPoints         []string `json:"sellingPoints"`
	CompetitiveAdvantages []string `json:"competitiveAdvantages"`
	EmotionalHooks        []string `json:"emotionalHooks"`
}

// MarketingContent — сгенерированный маркетинговый контент hero-баннера.
// Ограничения на длину полей (badge <= 4 слов, заголовки <= 2 слов и т.д.)
// закодированы в промпте; нарушение — дефект качества, а не ошибка контракта.
type MarketingContent struct {
	Badge             string   `json:"badge"`
	MainTitle         string   `json:"mainTitle"`
	HighlightTitle    string   `json:"highlightTitle"`
	Subtitle          string   `json:"subtitle"`
	Description       string   `json:"description"`
	ButtonText        string   `json:"buttonText"`
	FooterText        string   `json:"footerText"`
	UrgencyTactics    []string `json:"urgencyTactics"`
	EmotionalTriggers []string `json:"emotionalTriggers"`
	SalesTechniques   []string `json:"salesTechniques"`
}

// ProductCopy — тексты для карточки одного товара.
type ProductCopy struct {
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	SellingPoints    []string `json:"sellingPoints"`
	UrgencyText      string   `json:"urgencyText"`
}

// DualAIResult — результат двухпровайдерной генерации с арбитражем.
type DualAIResult struct {
	OpenAIContent *MarketingContent `json:"openaiContent"`
	GeminiContent *MarketingContent `json:"geminiContent"`
	BestContent   *MarketingContent `json:"bestContent"`
	Comparison    string            `json:"comparison"`
}

// Voice — голос TTS-провайдера.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// CatalogStats — агрегаты по списку товаров, встраиваемые в промпты.
type CatalogStats struct {
	TotalSavings    decimal.Decimal
	AverageDiscount decimal.Decimal
	Brands          []string // не более 3 уникальных брендов
	Categories      []string
}

const maxStatBrands = 3

// ComputeCatalogStats считает агрегаты каталога: суммарную экономию,
// средний процент скидки, до 3 уникальных брендов и уникальные категории.
func ComputeCatalogStats(products []Product) CatalogStats {
	cents := decimal.NewFromInt(100)

	totalSavings := decimal.Zero
	discountSum := decimal.Zero

	seenBrands := make(map[string]struct{})
	seenCategories := make(map[string]struct{})
	brands := make([]string, 0, maxStatBrands)
	categories := make([]string, 0)

	for _, p := range products {
		totalSavings = totalSavings.Add(decimal.NewFromInt(p.Savings()).Div(cents))
		discountSum = discountSum.Add(decimal.NewFromInt(int64(p.DiscountPercent)))

		brand := strings.TrimSpace(p.Brand)
		if _, ok := seenBrands[brand]; !ok && brand != "" {
			seenBrands[brand] = struct{}{}
			if len(brands) < maxStatBrands {
				brands = append(brands, brand)
			}
		}

		category := strings.TrimSpace(p.Category)
		if _, ok := seenCategories[category]; !ok && category != "" {
			seenCategories[category] = struct{}{}
			categories = append(categories, category)
		}
	}

	avgDiscount := decimal.Zero
	if len(products) > 0 {
		avgDiscount = discountSum.Div(decimal.NewFromInt(int64(len(products)))).Round(1)
	}

	return CatalogStats{
		TotalSavings:    totalSavings,
		AverageDiscount: avgDiscount,
		Brands:          brands,
		Categories:      categories,
	}
}
