package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
)

// Промпты общие для всех диалоговых провайдеров: одинаковый входной срез
// каталога, одинаковая требуемая форма JSON-ответа.

const analysisSystemRole = "You are a luxury e-commerce marketing analyst. Respond with a single JSON object only, no prose."

func catalogSummary(products []domain.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s | brand: %s | category: %s | original: %.2f | discounted: %.2f | discount: %d%% | stock: %d\n",
			p.Name, p.Brand, p.Category,
			float64(p.OriginalPrice)/100, float64(p.DiscountedPrice)/100,
			p.DiscountPercent, p.Stock,
		)
	}
	return b.String()
}

func analysisPrompt(products []domain.Product) string {
	return fmt.Sprintf(`Analyze this luxury discount catalog:

%s
Return JSON with exactly these fields:
{
  "luxuryScore": <int 0-100>,
  "discountScore": <int 0-100>,
  "targetAudience": "<free text>",
  "sellingPoints": ["..."],
  "competitiveAdvantages": ["..."],
  "emotionalHooks": ["..."]
}`, catalogSummary(products))
}

func heroBannerPrompt(products []domain.Product, analysis *domain.ProductAnalysis) string {
	stats := domain.ComputeCatalogStats(products)

	analysisJSON, _ := json.Marshal(analysis)

	return fmt.Sprintf(`Create hero banner copy for a luxury discount storefront.

Catalog:
%s
Aggregates: total savings %s, average discount %s%%, brands: %s, categories: %s.

Product analysis: %s

STRICT limits, exceeding any of them makes the copy unusable:
- badge: max 4 words
- mainTitle: max 2 words
- highlightTitle: max 2 words
- subtitle: max 3 words
- description: under 100 characters
- buttonText: max 3 words
- footerText: max 6 words

Return JSON with exactly these fields:
{
  "badge": "...",
  "mainTitle": "...",
  "highlightTitle": "...",
  "subtitle": "...",
  "description": "...",
  "buttonText": "...",
  "footerText": "...",
  "urgencyTactics": ["..."],
  "emotionalTriggers": ["..."],
  "salesTechniques": ["..."]
}`,
		catalogSummary(products),
		stats.TotalSavings.StringFixed(2),
		stats.AverageDiscount.String(),
		strings.Join(stats.Brands, ", "),
		strings.Join(stats.Categories, ", "),
		analysisJSON,
	)
}

func productDescriptionsPrompt(product *domain.Product) string {
	return fmt.Sprintf(`Write sales copy for one luxury product:
name: %s, brand: %s, category: %s, original price: %.2f, discounted price: %.2f (-%d%%), stock: %d.

Return JSON with exactly these fields:
{
  "shortDescription": "<1-2 sentences>",
  "longDescription": "<1 paragraph>",
  "sellingPoints": ["..."],
  "urgencyText": "<one short line>"
}`,
		product.Name, product.Brand, product.Category,
		float64(product.OriginalPrice)/100, float64(product.DiscountedPrice)/100,
		product.DiscountPercent, product.Stock,
	)
}

func optimizePrompt(content any, performance map[string]any) (string, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return "", err
	}

	performanceJSON, err := json.Marshal(performance)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Improve the marketing content below, keeping the exact same JSON shape as a hero banner:
{"badge", "mainTitle", "highlightTitle", "subtitle", "description", "buttonText", "footerText", "urgencyTactics", "emotionalTriggers", "salesTechniques"}

Current content: %s
Performance data: %s

Respect the hero banner word/length limits (badge<=4 words, titles<=2 words, subtitle<=3 words, description<100 chars, button<=3 words, footer<=6 words).
Return the improved JSON object only.`, contentJSON, performanceJSON), nil
}

// decodeResponse разбирает JSON-ответ модели в v.
// Пустой ответ — ошибка, а не пустой успех. Markdown-ограждения вокруг
// JSON срезаются: Gemini любит оборачивать ответ в ```json.
func decodeResponse(raw string, v any) error {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return e.ErrEmptyResponse
	}

	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return e.ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return e.Wrap(err.Error(), e.ErrUnparsableResponse)
	}

	return nil
}
