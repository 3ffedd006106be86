package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// --- Mocks ---

// mockMarketingUC возвращает заранее заданные значения; любой err
// распространяется на все операции.
type mockMarketingUC struct {
	err      error
	banner   *domain.HeroBanner
	content  *domain.MarketingContent
	analysis *domain.ProductAnalysis
	dual     *domain.DualAIResult
}

func (m *mockMarketingUC) AnalyzeProducts(ctx context.Context, req *usecase.AnalyzeProductsReq) (*domain.ProductAnalysis, error) {
	return m.analysis, m.err
}

func (m *mockMarketingUC) GenerateHeroBanner(ctx context.Context, req *usecase.GenerateBannerReq) (*domain.MarketingContent, error) {
	return m.content, m.err
}

func (m *mockMarketingUC) GenerateDualContent(ctx context.Context, req *usecase.AnalyzeProductsReq) (*domain.DualAIResult, error) {
	return m.dual, m.err
}

func (m *mockMarketingUC) SelectBestContent(ctx context.Context, openaiContent, geminiContent *domain.MarketingContent) (*domain.MarketingContent, error) {
	return m.content, m.err
}

func (m *mockMarketingUC) GenerateProductDescriptions(ctx context.Context, productID int64) (*domain.ProductCopy, error) {
	return nil, m.err
}

func (m *mockMarketingUC) OptimizeForConversion(ctx context.Context, content map[string]any, performance map[string]any) (*domain.MarketingContent, error) {
	return m.content, m.err
}

func (m *mockMarketingUC) GenerateProductAudio(ctx context.Context, req *usecase.GenerateAudioReq) (*usecase.GenerateAudioRes, error) {
	return nil, m.err
}

func (m *mockMarketingUC) ListVoices(ctx context.Context) ([]domain.Voice, error) {
	return nil, m.err
}

func (m *mockMarketingUC) ApplyHeroBanner(ctx context.Context, content *domain.MarketingContent) (*domain.HeroBanner, error) {
	return m.banner, m.err
}

func (m *mockMarketingUC) ActiveHeroBanner(ctx context.Context) (*domain.HeroBanner, error) {
	return m.banner, m.err
}

func (m *mockMarketingUC) ListProviders() []usecase.ProviderDescriptor { return nil }

type mockProductUC struct {
	products []domain.Product
	err      error
}

func (m *mockProductUC) UpsertProduct(ctx context.Context, req *usecase.UpsertProductReq) (*domain.Product, error) {
	return nil, m.err
}

func (m *mockProductUC) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return nil, m.err
}

func (m *mockProductUC) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductUC) RelatedProducts(ctx context.Context, id int64, limit uint64) ([]usecase.RelatedProduct, error) {
	return nil, m.err
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// --- Tests ---

func TestHeroBanner_FallbackOnError(t *testing.T) {
	h := NewStorefrontHandler(&mockMarketingUC{err: errors.New("db down")}, &mockProductUC{}, logger.NewSlogLogger())

	rec := httptest.NewRecorder()
	h.heroBanner(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hero-banner", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["fallback"])
	assert.NotNil(t, body["content"])
}

func TestHeroBanner_FallbackWhenNoneActive(t *testing.T) {
	h := NewStorefrontHandler(&mockMarketingUC{}, &mockProductUC{}, logger.NewSlogLogger())

	rec := httptest.NewRecorder()
	h.heroBanner(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hero-banner", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["fallback"])
}

func TestHeroBanner_ServesActiveBanner(t *testing.T) {
	banner := &domain.HeroBanner{
		ID:       1,
		IsActive: true,
		Content:  domain.MarketingContent{MainTitle: "Luxury", HighlightTitle: "For Less"},
	}
	h := NewStorefrontHandler(&mockMarketingUC{banner: banner}, &mockProductUC{}, logger.NewSlogLogger())

	rec := httptest.NewRecorder()
	h.heroBanner(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hero-banner", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["fallback"])
	content := body["content"].(map[string]any)
	assert.Equal(t, "Luxury", content["mainTitle"])
}

func TestGenerateBanner_FallbackOnProviderFailure(t *testing.T) {
	h := NewMarketingHandler(&mockMarketingUC{err: e.ErrProviderCall}, logger.NewSlogLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/ai-marketing/generate-banner",
		strings.NewReader(`{"productIds":[1,2],"aiProvider":"openai"}`))
	rec := httptest.NewRecorder()
	h.generateBanner(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["fallback"])
	assert.NotNil(t, body["content"])
}

func TestGenerateBanner_BadJSON(t *testing.T) {
	h := NewMarketingHandler(&mockMarketingUC{}, logger.NewSlogLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/ai-marketing/generate-banner",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.generateBanner(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDual_FallbackOnError(t *testing.T) {
	h := NewMarketingHandler(&mockMarketingUC{err: e.ErrProviderCall}, logger.NewSlogLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/ai-marketing/generate-dual",
		strings.NewReader(`{"productIds":[]}`))
	rec := httptest.NewRecorder()
	h.generateDual(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["fallback"])
}

func TestCatalogStats(t *testing.T) {
	products := []domain.Product{
		{Brand: "Rolex", Category: "Watches", OriginalPrice: 1000000, DiscountedPrice: 750000, DiscountPercent: 25},
		{Brand: "Gucci", Category: "Bags", OriginalPrice: 200000, DiscountedPrice: 150000, DiscountPercent: 25},
	}
	h := NewStorefrontHandler(&mockMarketingUC{}, &mockProductUC{products: products}, logger.NewSlogLogger())

	rec := httptest.NewRecorder()
	h.catalogStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog-stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "3000.00", body["totalSavings"])
	assert.Equal(t, "25", body["averageDiscount"])
	assert.EqualValues(t, 2, body["productCount"])
}

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("valid token passes", func(t *testing.T) {
		handler := AdminAuth("top-secret", logger.NewSlogLogger())(next)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/1", nil)
		req.Header.Set("Authorization", "Bearer top-secret")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		handler := AdminAuth("top-secret", logger.NewSlogLogger())(next)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/1", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		handler := AdminAuth("top-secret", logger.NewSlogLogger())(next)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unset token closes admin api", func(t *testing.T) {
		handler := AdminAuth("", logger.NewSlogLogger())(next)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/1", nil)
		req.Header.Set("Authorization", "Bearer anything")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrWebhookNotFound, http.StatusNotFound},
		{e.ErrCustomerNameRequired, http.StatusBadRequest},
		{e.ErrEmptyOrder, http.StatusBadRequest},
		{e.ErrInvalidStatusChange, http.StatusBadRequest},
		{e.ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := ToHTTPResponse(e.Wrap("op", tc.err))
		assert.Equal(t, tc.code, code, "for error %v", tc.err)
	}
}
