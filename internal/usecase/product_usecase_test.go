package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type mockEmbeddingRepo struct {
	similar []RelatedProduct
}

func (m *mockEmbeddingRepo) Upsert(ctx context.Context, vectors []domain.Embedding) error {
	return nil
}

func (m *mockEmbeddingRepo) SearchSimilar(ctx context.Context, vector []float32, limit uint64) ([]RelatedProduct, error) {
	return m.similar, nil
}

type mockEmbeddingsInfra struct{}

func (m *mockEmbeddingsInfra) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

func newTestProductUC(productRepo ProductRepository, embRepo EmbeddingRepository) *ProductUseCase {
	return NewProductUC(productRepo, embRepo, &mockEmbeddingsInfra{}, logger.NewSlogLogger())
}

func TestUpsertProduct_Validation(t *testing.T) {
	uc := newTestProductUC(&mockProductRepo{}, &mockEmbeddingRepo{})

	_, err := uc.UpsertProduct(context.Background(), &UpsertProductReq{
		Name:          "  ",
		OriginalPrice: 100, DiscountedPrice: 80,
	})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.UpsertProduct(context.Background(), &UpsertProductReq{
		Name:          "Submariner",
		OriginalPrice: 0, DiscountedPrice: 80,
	})
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = uc.UpsertProduct(context.Background(), &UpsertProductReq{
		Name:          "Submariner",
		OriginalPrice: 100, DiscountedPrice: -1,
	})
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestRelatedProducts_ExcludesSelf(t *testing.T) {
	embRepo := &mockEmbeddingRepo{similar: []RelatedProduct{
		{ProductID: 1, Name: "Submariner", Score: 0.99},
		{ProductID: 2, Name: "Marmont", Score: 0.87},
		{ProductID: 3, Name: "Daytona", Score: 0.85},
	}}
	uc := newTestProductUC(&mockProductRepo{products: testProducts()}, embRepo)

	related, err := uc.RelatedProducts(context.Background(), 1, 5)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, int64(2), related[0].ProductID)
	assert.Equal(t, int64(3), related[1].ProductID)
}

func TestRelatedProducts_UnknownProduct(t *testing.T) {
	uc := newTestProductUC(&mockProductRepo{products: testProducts()}, &mockEmbeddingRepo{})

	_, err := uc.RelatedProducts(context.Background(), 99, 5)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestEmbeddingText(t *testing.T) {
	text := embeddingText(&domain.Product{Name: "Submariner", Brand: "Rolex", Category: "Watches"})
	assert.Equal(t, "Rolex Submariner Watches", text)
}
