package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// Фиксированное описание двухпровайдерного результата.
// Арбитражный вызов мог бы объяснять выбор сам, но это удорожает каждый
// запрос, поэтому строка статична.
const dualComparisonNote = "Both providers generated independent variants; the merged copy combines the strongest elements of each."

// MarketingUseCase компонует вызовы реестра провайдеров в админские
// сценарии генерации маркетингового контента.
type MarketingUseCase struct {
	registry    ProviderRegistry
	productRepo ProductRepository
	bannerRepo  HeroBannerRepository
	cacheRepo   AnalysisCacheRepository
	audioRepo   AudioRepository
	logger      logger.Logger
}

func NewMarketingUC(
	registry ProviderRegistry,
	productRepo ProductRepository,
	bannerRepo HeroBannerRepository,
	cacheRepo AnalysisCacheRepository,
	audioRepo AudioRepository,
	logger logger.Logger,
) *MarketingUseCase {
	return &MarketingUseCase{
		registry:    registry,
		productRepo: productRepo,
		bannerRepo:  bannerRepo,
		cacheRepo:   cacheRepo,
		audioRepo:   audioRepo,
		logger:      logger,
	}
}

// AnalyzeProducts запускает AI-анализ каталога. Анализ всегда выполняет
// провайдер "openai": он стабильнее в структурированных рассуждениях.
// Результат кэшируется по набору ID товаров.
func (m *MarketingUseCase) AnalyzeProducts(ctx context.Context, req *AnalyzeProductsReq) (*domain.ProductAnalysis, error) {
	const op = "MarketingUseCase.AnalyzeProducts"

	products, err := m.loadProducts(ctx, req.ProductIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cacheKey := analysisCacheKey(products)
	if m.cacheRepo != nil {
		if cached, err := m.cacheRepo.GetAnalysis(ctx, cacheKey); err == nil && cached != nil {
			return cached, nil
		}
	}

	provider, err := m.registry.ResolveConversational(ProviderOpenAI)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	analysis, err := provider.AnalyzeProducts(ctx, products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if m.cacheRepo != nil {
		// Фоновое добавление анализа в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := m.cacheRepo.SetAnalysis(bgCtx, cacheKey, analysis); err != nil {
				m.logger.Warnf("Failed to cache analysis in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return analysis, nil
}

// GenerateHeroBanner генерирует контент hero-баннера указанным провайдером
// (по умолчанию "openai"). Анализ, если не передан, провайдер вычислит сам.
func (m *MarketingUseCase) GenerateHeroBanner(ctx context.Context, req *GenerateBannerReq) (*domain.MarketingContent, error) {
	const op = "MarketingUseCase.GenerateHeroBanner"

	kind := req.Provider
	if kind == "" {
		kind = ProviderOpenAI
	}

	provider, err := m.registry.ResolveConversational(kind)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := m.loadProducts(ctx, req.ProductIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	content, err := provider.GenerateHeroBanner(ctx, products, req.Analysis)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return content, nil
}

// GenerateDualContent генерирует баннер обоими провайдерами параллельно и
// отдаёт арбитраж "openai"-провайдеру. Ошибка любого из трёх вызовов —
// ошибка всей операции: подстановка fallback-контента остаётся за вызывающим.
func (m *MarketingUseCase) GenerateDualContent(ctx context.Context, req *AnalyzeProductsReq) (*domain.DualAIResult, error) {
	const op = "MarketingUseCase.GenerateDualContent"

	openaiProv, err := m.registry.ResolveConversational(ProviderOpenAI)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	geminiProv, err := m.registry.ResolveConversational(ProviderGemini)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := m.loadProducts(ctx, req.ProductIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	type genResult struct {
		kind    ProviderKind
		content *domain.MarketingContent
		err     error
	}

	resCh := make(chan genResult, 2)
	for _, provider := range []ConversationalProvider{openaiProv, geminiProv} {
		go func() {
			content, err := provider.GenerateHeroBanner(ctx, products, nil)
			resCh <- genResult{kind: provider.Kind(), content: content, err: err}
		}()
	}

	var openaiContent, geminiContent *domain.MarketingContent
	for completed := 0; completed < 2; completed++ {
		select {
		case res := <-resCh:
			if res.err != nil {
				return nil, e.Wrap(op, fmt.Errorf("%s generation failed: %w", res.kind, res.err))
			}
			if res.kind == ProviderGemini {
				geminiContent = res.content
			} else {
				openaiContent = res.content
			}
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	best, err := m.arbitrate(ctx, openaiProv, openaiContent, geminiContent)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &domain.DualAIResult{
		OpenAIContent: openaiContent,
		GeminiContent: geminiContent,
		BestContent:   best,
		Comparison:    dualComparisonNote,
	}, nil
}

// SelectBestContent — арбитраж для вызывающих, у которых оба варианта уже есть.
func (m *MarketingUseCase) SelectBestContent(ctx context.Context, openaiContent, geminiContent *domain.MarketingContent) (*domain.MarketingContent, error) {
	const op = "MarketingUseCase.SelectBestContent"

	provider, err := m.registry.ResolveConversational(ProviderOpenAI)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	best, err := m.arbitrate(ctx, provider, openaiContent, geminiContent)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return best, nil
}

// GenerateProductDescriptions генерирует тексты карточки товара ("openai").
func (m *MarketingUseCase) GenerateProductDescriptions(ctx context.Context, productID int64) (*domain.ProductCopy, error) {
	const op = "MarketingUseCase.GenerateProductDescriptions"

	product, err := m.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	provider, err := m.registry.ResolveConversational(ProviderOpenAI)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	productCopy, err := provider.GenerateProductDescriptions(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return productCopy, nil
}

// OptimizeForConversion улучшает произвольный контент с учётом метрик ("openai").
func (m *MarketingUseCase) OptimizeForConversion(ctx context.Context, content map[string]any, performance map[string]any) (*domain.MarketingContent, error) {
	const op = "MarketingUseCase.OptimizeForConversion"

	provider, err := m.registry.ResolveConversational(ProviderOpenAI)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	optimized, err := provider.OptimizeContent(ctx, content, performance)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return optimized, nil
}

// GenerateProductAudio синтезирует озвучку маркетингового текста и сохраняет
// её в объектное хранилище. Ошибка сохранения не роняет операцию: аудио
// уже на руках, админка получает его без ключа объекта.
func (m *MarketingUseCase) GenerateProductAudio(ctx context.Context, req *GenerateAudioReq) (*GenerateAudioRes, error) {
	const (
		op       = "MarketingUseCase.GenerateProductAudio"
		mimeType = "audio/mpeg"
	)

	if strings.TrimSpace(req.Text) == "" {
		return nil, e.Wrap(op, e.ErrEmptyText)
	}

	provider, err := m.registry.ResolveSpeech("")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	audio, err := provider.GenerateSpeech(ctx, req.Text, req.VoiceID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	clipID := uuid.NewString()
	objectKey := fmt.Sprintf("audio/%s.mp3", clipID)
	size := int64(len(audio))
	mime := mimeType

	key, err := m.audioRepo.Upload(ctx, domain.NewAudioClip(clipID, "", objectKey, audio, &size, &mime))
	if err != nil {
		m.logger.Warnf("Failed to store generated audio: %v", e.Wrap(op, err))
		return NewGenerateAudioRes("", audio, mimeType), nil
	}

	return NewGenerateAudioRes(key, audio, mimeType), nil
}

// ListVoices возвращает голоса TTS-провайдера по умолчанию.
func (m *MarketingUseCase) ListVoices(ctx context.Context) ([]domain.Voice, error) {
	const op = "MarketingUseCase.ListVoices"

	provider, err := m.registry.ResolveSpeech("")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	voices, err := provider.GetVoices(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return voices, nil
}

// ApplyHeroBanner сохраняет выбранный контент как активный баннер.
func (m *MarketingUseCase) ApplyHeroBanner(ctx context.Context, content *domain.MarketingContent) (*domain.HeroBanner, error) {
	const op = "MarketingUseCase.ApplyHeroBanner"

	banner, err := m.bannerRepo.Create(ctx, domain.NewHeroBanner(*content))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return banner, nil
}

// ActiveHeroBanner возвращает текущий активный баннер витрины, nil если его нет.
func (m *MarketingUseCase) ActiveHeroBanner(ctx context.Context) (*domain.HeroBanner, error) {
	const op = "MarketingUseCase.ActiveHeroBanner"

	banner, err := m.bannerRepo.GetActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return banner, nil
}

// ListProviders возвращает зарегистрированных диалоговых провайдеров для UI.
func (m *MarketingUseCase) ListProviders() []ProviderDescriptor {
	return m.registry.ListConversational()
}

// arbitrate просит провайдера собрать лучший вариант из двух сгенерированных.
func (m *MarketingUseCase) arbitrate(ctx context.Context, provider ConversationalProvider, openaiContent, geminiContent *domain.MarketingContent) (*domain.MarketingContent, error) {
	return provider.OptimizeContent(ctx,
		map[string]any{
			"openai": openaiContent,
			"gemini": geminiContent,
		},
		map[string]any{
			"context": "Select best elements from both",
		},
	)
}

// loadProducts загружает товары по ID; пустой список — весь активный каталог.
func (m *MarketingUseCase) loadProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var (
		products []domain.Product
		err      error
	)

	if len(ids) == 0 {
		products, err = m.productRepo.ListActive(ctx)
	} else {
		products, err = m.productRepo.GetByIDs(ctx, ids)
	}
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, e.ErrNoProducts
	}

	return products, nil
}

// analysisCacheKey строит ключ кэша анализа по отсортированному набору ID.
func analysisCacheKey(products []domain.Product) string {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, ",")))
	return hex.EncodeToString(sum[:])
}
