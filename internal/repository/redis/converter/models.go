package converter

// ProductAnalysisRedisModel — кэшируемое представление AI-анализа каталога.
type ProductAnalysisRedisModel struct {
	LuxuryScore           int      `json:"luxury_score"`
	DiscountScore         int      `json:"discount_score"`
	TargetAudience        string   `json:"target_audience"`
	SellingPoints         []string `json:"selling_points"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
	EmotionalHooks        []string `json:"emotional_hooks"`
}
