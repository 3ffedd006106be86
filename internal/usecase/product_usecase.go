package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// ProductUseCase реализует управление каталогом и синхронизацию
// векторных представлений товаров.
type ProductUseCase struct {
	productRepo     ProductRepository
	embeddingRepo   EmbeddingRepository
	embeddingsInfra EmbeddingsInfra
	logger          logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	embeddingRepo EmbeddingRepository,
	embeddingsInfra EmbeddingsInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:     productRepo,
		embeddingRepo:   embeddingRepo,
		embeddingsInfra: embeddingsInfra,
		logger:          logger,
	}
}

// UpsertProduct идемпотентно создаёт или обновляет товар и в фоне
// синхронизирует его вектор в Qdrant. Неудача синхронизации не роняет
// операцию: похожие товары — вспомогательная функция.
func (p *ProductUseCase) UpsertProduct(ctx context.Context, req *UpsertProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpsertProduct"

	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Upsert(ctx, domain.NewProduct(
		req.Name,
		req.Brand,
		req.Category,
		req.OriginalPrice,
		req.DiscountedPrice,
		req.DiscountPercent,
		req.Stock,
		req.ImageKey,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := p.syncEmbedding(bgCtx, product); err != nil {
			p.logger.Warnf("Failed to sync product embedding: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

// GetProduct возвращает товар по ID.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// ListProducts возвращает активный каталог.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// RelatedProducts ищет похожие товары по вектору описания.
func (p *ProductUseCase) RelatedProducts(ctx context.Context, id int64, limit uint64) ([]RelatedProduct, error) {
	const op = "ProductUseCase.RelatedProducts"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	vector, err := p.embeddingsInfra.EmbedText(ctx, embeddingText(product))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	related, err := p.embeddingRepo.SearchSimilar(ctx, vector, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// сам товар из выдачи исключается
	result := make([]RelatedProduct, 0, len(related))
	for _, r := range related {
		if r.ProductID == id {
			continue
		}
		result = append(result, r)
	}

	return result, nil
}

// syncEmbedding получает вектор текста товара и сохраняет его в Qdrant.
func (p *ProductUseCase) syncEmbedding(ctx context.Context, product *domain.Product) error {
	vector, err := p.embeddingsInfra.EmbedText(ctx, embeddingText(product))
	if err != nil {
		return err
	}

	payload := domain.NewEmbeddingPayload(product.ID, product.Name, product.Brand, product.Category)
	return p.embeddingRepo.Upsert(ctx, []domain.Embedding{
		*domain.NewEmbedding(uuid.NewString(), vector, payload),
	})
}

func (p *ProductUseCase) validateProduct(req *UpsertProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrMissingFields
	}

	if req.OriginalPrice <= 0 || req.DiscountedPrice <= 0 {
		return e.ErrInvalidPrice
	}

	return nil
}

func embeddingText(product *domain.Product) string {
	return fmt.Sprintf("%s %s %s", product.Brand, product.Name, product.Category)
}
