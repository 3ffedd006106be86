package usecase

import (
	"context"

	"github.com/thriftysouq/go-backend/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order, lines []domain.OrderLine) (*domain.Order, []domain.OrderLine, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type WebhookRepository interface {
	Create(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error)
	Update(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Webhook, error)
	List(ctx context.Context) ([]domain.Webhook, error)
	GetActiveByEvent(ctx context.Context, event string) ([]domain.Webhook, error)
}

type HeroBannerRepository interface {
	Create(ctx context.Context, banner *domain.HeroBanner) (*domain.HeroBanner, error)
	GetActive(ctx context.Context) (*domain.HeroBanner, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type AudioRepository interface {
	Upload(ctx context.Context, clip *domain.AudioClip) (string, error)
	Delete(ctx context.Context, key string) error
}

type EmbeddingRepository interface {
	Upsert(ctx context.Context, vectors []domain.Embedding) error
	SearchSimilar(ctx context.Context, vector []float32, limit uint64) ([]RelatedProduct, error)
}

type AnalysisCacheRepository interface {
	GetAnalysis(ctx context.Context, key string) (*domain.ProductAnalysis, error)
	SetAnalysis(ctx context.Context, key string, analysis *domain.ProductAnalysis) error
}
