package domain

import "time"

// HeroBanner — сохранённый баннер главной страницы.
// Создаётся администратором из сгенерированного MarketingContent.
type HeroBanner struct {
	ID        int64
	Content   MarketingContent
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewHeroBanner(content MarketingContent) *HeroBanner {
	return &HeroBanner{
		Content:  content,
		IsActive: true,
	}
}
