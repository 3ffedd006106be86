package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// --- Mocks ---

type mockProvider struct {
	kind ProviderKind

	analyzeCalls  atomic.Int64
	bannerCalls   atomic.Int64
	descCalls     atomic.Int64
	optimizeCalls atomic.Int64

	bannerErr   error
	optimizeErr error

	banner    *domain.MarketingContent
	optimized *domain.MarketingContent
}

func (m *mockProvider) Kind() ProviderKind  { return m.kind }
func (m *mockProvider) DisplayName() string { return string(m.kind) }

func (m *mockProvider) AnalyzeProducts(ctx context.Context, products []domain.Product) (*domain.ProductAnalysis, error) {
	m.analyzeCalls.Add(1)
	return &domain.ProductAnalysis{LuxuryScore: 80, DiscountScore: 60}, nil
}

func (m *mockProvider) GenerateHeroBanner(ctx context.Context, products []domain.Product, analysis *domain.ProductAnalysis) (*domain.MarketingContent, error) {
	m.bannerCalls.Add(1)
	if m.bannerErr != nil {
		return nil, m.bannerErr
	}
	return m.banner, nil
}

func (m *mockProvider) GenerateProductDescriptions(ctx context.Context, product *domain.Product) (*domain.ProductCopy, error) {
	m.descCalls.Add(1)
	return &domain.ProductCopy{ShortDescription: "short"}, nil
}

func (m *mockProvider) OptimizeContent(ctx context.Context, content any, performance map[string]any) (*domain.MarketingContent, error) {
	m.optimizeCalls.Add(1)
	if m.optimizeErr != nil {
		return nil, m.optimizeErr
	}
	return m.optimized, nil
}

// mockRegistry повторяет политику реального реестра: промах по kind отдаёт
// первого зарегистрированного, пустой реестр — ошибка.
type mockRegistry struct {
	providers map[ProviderKind]ConversationalProvider
	order     []ProviderKind
	speech    SpeechProvider
}

func newMockRegistry(providers ...*mockProvider) *mockRegistry {
	r := &mockRegistry{providers: make(map[ProviderKind]ConversationalProvider)}
	for _, p := range providers {
		r.providers[p.kind] = p
		r.order = append(r.order, p.kind)
	}
	return r
}

func (r *mockRegistry) ResolveConversational(kind ProviderKind) (ConversationalProvider, error) {
	if p, ok := r.providers[kind]; ok {
		return p, nil
	}
	if len(r.order) > 0 {
		return r.providers[r.order[0]], nil
	}
	return nil, e.ErrNoProviderAvailable
}

func (r *mockRegistry) ResolveSpeech(id string) (SpeechProvider, error) {
	if r.speech == nil {
		return nil, e.ErrNoProviderAvailable
	}
	return r.speech, nil
}

func (r *mockRegistry) ListConversational() []ProviderDescriptor { return nil }
func (r *mockRegistry) ListSpeech() []ProviderDescriptor         { return nil }

type mockSpeechProvider struct {
	audio  []byte
	voices []domain.Voice
	err    error
}

func (m *mockSpeechProvider) ID() string          { return "elevenlabs" }
func (m *mockSpeechProvider) DisplayName() string { return "ElevenLabs" }

func (m *mockSpeechProvider) GenerateSpeech(ctx context.Context, text, voiceID string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.audio, nil
}

func (m *mockSpeechProvider) GetVoices(ctx context.Context) ([]domain.Voice, error) {
	return m.voices, nil
}

type mockProductRepo struct {
	products []domain.Product
}

func (m *mockProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var result []domain.Product
	for _, id := range ids {
		for _, p := range m.products {
			if p.ID == id {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (m *mockProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	return m.products, nil
}

type mockBannerRepo struct {
	active  *domain.HeroBanner
	created *domain.HeroBanner
}

func (m *mockBannerRepo) Create(ctx context.Context, banner *domain.HeroBanner) (*domain.HeroBanner, error) {
	banner.ID = 1
	banner.IsActive = true
	m.created = banner
	return banner, nil
}

func (m *mockBannerRepo) GetActive(ctx context.Context) (*domain.HeroBanner, error) {
	return m.active, nil
}

type mockCacheRepo struct {
	mu    sync.Mutex
	store map[string]*domain.ProductAnalysis
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{store: make(map[string]*domain.ProductAnalysis)}
}

func (m *mockCacheRepo) GetAnalysis(ctx context.Context, key string) (*domain.ProductAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store[key], nil
}

func (m *mockCacheRepo) SetAnalysis(ctx context.Context, key string, analysis *domain.ProductAnalysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = analysis
	return nil
}

type mockAudioRepo struct {
	uploadErr error
	lastKey   string
}

func (m *mockAudioRepo) Upload(ctx context.Context, clip *domain.AudioClip) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.lastKey = clip.ObjectKey
	return clip.ObjectKey, nil
}

func (m *mockAudioRepo) Delete(ctx context.Context, key string) error { return nil }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Submariner", Brand: "Rolex", Category: "Watches", OriginalPrice: 1000000, DiscountedPrice: 800000, DiscountPercent: 20},
		{ID: 2, Name: "Marmont", Brand: "Gucci", Category: "Bags", OriginalPrice: 200000, DiscountedPrice: 150000, DiscountPercent: 25},
	}
}

func newTestMarketingUC(registry ProviderRegistry, productRepo ProductRepository, bannerRepo HeroBannerRepository, cacheRepo AnalysisCacheRepository, audioRepo AudioRepository) *MarketingUseCase {
	return NewMarketingUC(registry, productRepo, bannerRepo, cacheRepo, audioRepo, logger.NewSlogLogger())
}

// --- Tests ---

func TestGenerateDualContent_CallsEachProviderOnce(t *testing.T) {
	openai := &mockProvider{
		kind:      ProviderOpenAI,
		banner:    &domain.MarketingContent{MainTitle: "Luxury", Badge: "openai"},
		optimized: &domain.MarketingContent{MainTitle: "Merged"},
	}
	gemini := &mockProvider{
		kind:   ProviderGemini,
		banner: &domain.MarketingContent{MainTitle: "Elegance", Badge: "gemini"},
	}
	uc := newTestMarketingUC(newMockRegistry(openai, gemini), &mockProductRepo{products: testProducts()}, &mockBannerRepo{}, nil, nil)

	result, err := uc.GenerateDualContent(context.Background(), NewAnalyzeProductsReq(nil))
	require.NoError(t, err)

	assert.EqualValues(t, 1, openai.bannerCalls.Load())
	assert.EqualValues(t, 1, gemini.bannerCalls.Load())
	// арбитраж выполняет openai-провайдер
	assert.EqualValues(t, 1, openai.optimizeCalls.Load())
	assert.EqualValues(t, 0, gemini.optimizeCalls.Load())

	assert.Equal(t, "openai", result.OpenAIContent.Badge)
	assert.Equal(t, "gemini", result.GeminiContent.Badge)
	assert.Equal(t, "Merged", result.BestContent.MainTitle)
	assert.NotEmpty(t, result.Comparison)
}

func TestGenerateDualContent_EitherProviderFailureFailsOperation(t *testing.T) {
	providerErr := errors.New("quota exceeded")

	cases := []struct {
		name     string
		failKind ProviderKind
	}{
		{"openai fails", ProviderOpenAI},
		{"gemini fails", ProviderGemini},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			openai := &mockProvider{kind: ProviderOpenAI, banner: &domain.MarketingContent{}, optimized: &domain.MarketingContent{}}
			gemini := &mockProvider{kind: ProviderGemini, banner: &domain.MarketingContent{}}
			if tc.failKind == ProviderOpenAI {
				openai.bannerErr = providerErr
			} else {
				gemini.bannerErr = providerErr
			}
			uc := newTestMarketingUC(newMockRegistry(openai, gemini), &mockProductRepo{products: testProducts()}, &mockBannerRepo{}, nil, nil)

			_, err := uc.GenerateDualContent(context.Background(), NewAnalyzeProductsReq(nil))
			require.Error(t, err)
			assert.ErrorIs(t, err, providerErr)
		})
	}
}

func TestGenerateDualContent_EmptyCatalog(t *testing.T) {
	openai := &mockProvider{kind: ProviderOpenAI}
	gemini := &mockProvider{kind: ProviderGemini}
	uc := newTestMarketingUC(newMockRegistry(openai, gemini), &mockProductRepo{}, &mockBannerRepo{}, nil, nil)

	_, err := uc.GenerateDualContent(context.Background(), NewAnalyzeProductsReq(nil))
	assert.ErrorIs(t, err, e.ErrNoProducts)
}

func TestAnalyzeProducts_CacheHitSkipsProvider(t *testing.T) {
	openai := &mockProvider{kind: ProviderOpenAI}
	cache := newMockCacheRepo()
	uc := newTestMarketingUC(newMockRegistry(openai), &mockProductRepo{products: testProducts()}, &mockBannerRepo{}, cache, nil)

	first, err := uc.AnalyzeProducts(context.Background(), NewAnalyzeProductsReq([]int64{1, 2}))
	require.NoError(t, err)
	require.EqualValues(t, 1, openai.analyzeCalls.Load())

	// фоновая запись в кэш может отставать, поэтому кладём результат сами
	products, err := uc.loadProducts(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.NoError(t, cache.SetAnalysis(context.Background(), analysisCacheKey(products), first))

	second, err := uc.AnalyzeProducts(context.Background(), NewAnalyzeProductsReq([]int64{1, 2}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, openai.analyzeCalls.Load(), "cache hit must not call provider")
	assert.Equal(t, first.LuxuryScore, second.LuxuryScore)
}

func TestAnalyzeProducts_KeyIgnoresIDOrder(t *testing.T) {
	a := analysisCacheKey([]domain.Product{{ID: 2}, {ID: 1}})
	b := analysisCacheKey([]domain.Product{{ID: 1}, {ID: 2}})
	assert.Equal(t, a, b)
}

func TestSelectBestContent_ArbitratesViaOpenAI(t *testing.T) {
	openai := &mockProvider{kind: ProviderOpenAI, optimized: &domain.MarketingContent{MainTitle: "Best"}}
	gemini := &mockProvider{kind: ProviderGemini}
	uc := newTestMarketingUC(newMockRegistry(openai, gemini), &mockProductRepo{}, &mockBannerRepo{}, nil, nil)

	best, err := uc.SelectBestContent(context.Background(),
		&domain.MarketingContent{MainTitle: "A"},
		&domain.MarketingContent{MainTitle: "B"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Best", best.MainTitle)
	assert.EqualValues(t, 1, openai.optimizeCalls.Load())
}

func TestGenerateHeroBanner_PreservesTitleLimits(t *testing.T) {
	// Провайдер, соблюдающий контракт промпта, отдаёт короткие заголовки;
	// оркестратор обязан передать их без изменений.
	openai := &mockProvider{kind: ProviderOpenAI, banner: &domain.MarketingContent{
		MainTitle:      "Pure Luxury",
		HighlightTitle: "For Less",
	}}
	uc := newTestMarketingUC(newMockRegistry(openai), &mockProductRepo{products: testProducts()}, &mockBannerRepo{}, nil, nil)

	content, err := uc.GenerateHeroBanner(context.Background(), NewGenerateBannerReq(nil, ProviderOpenAI, nil))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(strings.Fields(content.MainTitle)), 2)
	assert.LessOrEqual(t, len(strings.Fields(content.HighlightTitle)), 2)
	assert.Equal(t, "Pure Luxury", content.MainTitle)
}

func TestGenerateHeroBanner_UnknownProviderFallsBack(t *testing.T) {
	gemini := &mockProvider{kind: ProviderGemini, banner: &domain.MarketingContent{MainTitle: "Elegance"}}
	uc := newTestMarketingUC(newMockRegistry(gemini), &mockProductRepo{products: testProducts()}, &mockBannerRepo{}, nil, nil)

	content, err := uc.GenerateHeroBanner(context.Background(), NewGenerateBannerReq(nil, ProviderOpenAI, nil))
	require.NoError(t, err)
	assert.Equal(t, "Elegance", content.MainTitle)
	assert.EqualValues(t, 1, gemini.bannerCalls.Load())
}

func TestGenerateProductAudio(t *testing.T) {
	registry := newMockRegistry()
	registry.speech = &mockSpeechProvider{audio: []byte("mp3-bytes")}
	audioRepo := &mockAudioRepo{}
	uc := newTestMarketingUC(registry, &mockProductRepo{}, &mockBannerRepo{}, nil, audioRepo)

	res, err := uc.GenerateProductAudio(context.Background(), NewGenerateAudioReq("Exclusive offer", ""))
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), res.Audio)
	assert.Equal(t, "audio/mpeg", res.MimeType)
	assert.NotEmpty(t, res.ObjectKey)
	assert.Equal(t, audioRepo.lastKey, res.ObjectKey)
}

func TestGenerateProductAudio_EmptyText(t *testing.T) {
	registry := newMockRegistry()
	registry.speech = &mockSpeechProvider{}
	uc := newTestMarketingUC(registry, &mockProductRepo{}, &mockBannerRepo{}, nil, &mockAudioRepo{})

	_, err := uc.GenerateProductAudio(context.Background(), NewGenerateAudioReq("   ", ""))
	assert.ErrorIs(t, err, e.ErrEmptyText)
}

func TestGenerateProductAudio_UploadFailureStillReturnsAudio(t *testing.T) {
	registry := newMockRegistry()
	registry.speech = &mockSpeechProvider{audio: []byte("mp3-bytes")}
	uc := newTestMarketingUC(registry, &mockProductRepo{}, &mockBannerRepo{}, nil, &mockAudioRepo{uploadErr: errors.New("minio down")})

	res, err := uc.GenerateProductAudio(context.Background(), NewGenerateAudioReq("Exclusive offer", "voice-1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), res.Audio)
	assert.Empty(t, res.ObjectKey)
}

func TestApplyHeroBanner(t *testing.T) {
	bannerRepo := &mockBannerRepo{}
	uc := newTestMarketingUC(newMockRegistry(), &mockProductRepo{}, bannerRepo, nil, nil)

	banner, err := uc.ApplyHeroBanner(context.Background(), &domain.MarketingContent{MainTitle: "Luxury"})
	require.NoError(t, err)
	assert.True(t, banner.IsActive)
	assert.Equal(t, "Luxury", bannerRepo.created.Content.MainTitle)
}
