package pgdb

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
)

// HeroBannerRepo хранит баннеры главной страницы. Контент лежит в jsonb:
// форма MarketingContent меняется вместе с промптами, миграции не нужны.
type HeroBannerRepo struct {
	pool *pgxpool.Pool
}

func NewHeroBannerRepo(pool *pgxpool.Pool) *HeroBannerRepo {
	return &HeroBannerRepo{pool: pool}
}

// Create сохраняет новый баннер и деактивирует предыдущий активный:
// активен всегда не более чем один баннер.
func (h *HeroBannerRepo) Create(ctx context.Context, banner *domain.HeroBanner) (*domain.HeroBanner, error) {
	content, err := json.Marshal(banner.Content)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	tx, err := h.pool.Begin(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE hero_banners SET is_active = false WHERE is_active`); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO hero_banners (content, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`

	result := *banner
	if err := tx.QueryRow(ctx, query, content, banner.IsActive).
		Scan(&result.ID, &result.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

// GetActive возвращает текущий активный баннер.
func (h *HeroBannerRepo) GetActive(ctx context.Context) (*domain.HeroBanner, error) {
	query := `
		SELECT id, content, is_active, created_at, updated_at
		FROM hero_banners
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1
	`

	var banner domain.HeroBanner
	var content []byte
	err := h.pool.QueryRow(ctx, query).
		Scan(&banner.ID, &content, &banner.IsActive, &banner.CreatedAt, &banner.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(content, &banner.Content); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &banner, nil
}
