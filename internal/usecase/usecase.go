package usecase

import (
	"context"

	"github.com/thriftysouq/go-backend/internal/domain"
)

type MarketingUC interface {
	AnalyzeProducts(ctx context.Context, req *AnalyzeProductsReq) (*domain.ProductAnalysis, error)
	GenerateHeroBanner(ctx context.Context, req *GenerateBannerReq) (*domain.MarketingContent, error)
	GenerateDualContent(ctx context.Context, req *AnalyzeProductsReq) (*domain.DualAIResult, error)
	SelectBestContent(ctx context.Context, openaiContent, geminiContent *domain.MarketingContent) (*domain.MarketingContent, error)
	GenerateProductDescriptions(ctx context.Context, productID int64) (*domain.ProductCopy, error)
	OptimizeForConversion(ctx context.Context, content map[string]any, performance map[string]any) (*domain.MarketingContent, error)
	GenerateProductAudio(ctx context.Context, req *GenerateAudioReq) (*GenerateAudioRes, error)
	ListVoices(ctx context.Context) ([]domain.Voice, error)
	ApplyHeroBanner(ctx context.Context, content *domain.MarketingContent) (*domain.HeroBanner, error)
	ActiveHeroBanner(ctx context.Context) (*domain.HeroBanner, error)
	ListProviders() []ProviderDescriptor
}

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error)
	UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*CreateOrderRes, error)
}

type ProductUC interface {
	UpsertProduct(ctx context.Context, req *UpsertProductReq) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	RelatedProducts(ctx context.Context, id int64, limit uint64) ([]RelatedProduct, error)
}

type WebhookUC interface {
	CreateWebhook(ctx context.Context, req *UpsertWebhookReq) (*domain.Webhook, error)
	UpdateWebhook(ctx context.Context, id int64, req *UpsertWebhookReq) (*domain.Webhook, error)
	DeleteWebhook(ctx context.Context, id int64) error
	GetWebhook(ctx context.Context, id int64) (*domain.Webhook, error)
	ListWebhooks(ctx context.Context) ([]domain.Webhook, error)
}
