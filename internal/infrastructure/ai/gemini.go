package ai

import (
	"context"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/jitter"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

const (
	geminiBackoffBase = 500 * time.Millisecond
	geminiBackoffMax  = 8 * time.Second
)

// GeminiProvider — диалоговый провайдер поверх Google Generative AI.
// Клиент создаётся лениво при первом вызове: отсутствие ключа проявляется
// как ошибка конкретного запроса, а не как падение всего приложения на старте.
type GeminiProvider struct {
	cfg    *cfg.AICfg
	logger logger.Logger

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiProvider(aiCfg *cfg.AICfg, log logger.Logger) *GeminiProvider {
	return &GeminiProvider{
		cfg:    aiCfg,
		logger: log,
	}
}

func (p *GeminiProvider) Kind() usecase.ProviderKind {
	return usecase.ProviderGemini
}

func (p *GeminiProvider) DisplayName() string {
	return "Google Gemini"
}

func (p *GeminiProvider) AnalyzeProducts(ctx context.Context, products []domain.Product) (*domain.ProductAnalysis, error) {
	const op = "ai.GeminiProvider.AnalyzeProducts"

	raw, err := p.complete(ctx, analysisPrompt(products))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var analysis domain.ProductAnalysis
	if err := decodeResponse(raw, &analysis); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &analysis, nil
}

func (p *GeminiProvider) GenerateHeroBanner(ctx context.Context, products []domain.Product, analysis *domain.ProductAnalysis) (*domain.MarketingContent, error) {
	const op = "ai.GeminiProvider.GenerateHeroBanner"

	if analysis == nil {
		computed, err := p.AnalyzeProducts(ctx, products)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		analysis = computed
	}

	raw, err := p.complete(ctx, heroBannerPrompt(products, analysis))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var content domain.MarketingContent
	if err := decodeResponse(raw, &content); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &content, nil
}

func (p *GeminiProvider) GenerateProductDescriptions(ctx context.Context, product *domain.Product) (*domain.ProductCopy, error) {
	const op = "ai.GeminiProvider.GenerateProductDescriptions"

	raw, err := p.complete(ctx, productDescriptionsPrompt(product))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var productCopy domain.ProductCopy
	if err := decodeResponse(raw, &productCopy); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &productCopy, nil
}

func (p *GeminiProvider) OptimizeContent(ctx context.Context, content any, performance map[string]any) (*domain.MarketingContent, error) {
	const op = "ai.GeminiProvider.OptimizeContent"

	prompt, err := optimizePrompt(content, performance)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	raw, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var optimized domain.MarketingContent
	if err := decodeResponse(raw, &optimized); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &optimized, nil
}

// Close освобождает grpc-соединение клиента, если он успел создаться.
func (p *GeminiProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}

	err := p.client.Close()
	p.client = nil
	p.model = nil

	return err
}

// ensureModel создаёт клиента и модель при первом обращении.
func (p *GeminiProvider) ensureModel(ctx context.Context) (*genai.GenerativeModel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.model != nil {
		return p.model, nil
	}

	if p.cfg.GeminiKey == "" {
		return nil, e.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.cfg.GeminiKey))
	if err != nil {
		return nil, e.Wrap(err.Error(), e.ErrProviderCall)
	}

	model := client.GenerativeModel(p.cfg.GeminiModel)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(analysisSystemRole)},
	}

	p.client = client
	p.model = model

	return model, nil
}

func (p *GeminiProvider) complete(ctx context.Context, prompt string) (string, error) {
	model, err := p.ensureModel(ctx)
	if err != nil {
		return "", err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(geminiBackoffBase, geminiBackoffMax, attempt-1, jitter.DefaultJitter)
			p.logger.Warnf("gemini: retry %d/%d after %s: %v", attempt, p.cfg.MaxRetries, backoff, lastErr)

			select {
			case <-timeoutCtx.Done():
				return "", timeoutCtx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := model.GenerateContent(timeoutCtx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}

		raw := extractText(resp)
		if raw == "" {
			lastErr = e.ErrEmptyResponse
			continue
		}

		return raw, nil
	}

	return "", e.Wrap(lastErr.Error(), e.ErrProviderCall)
}

// extractText склеивает текстовые части первого кандидата ответа.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}

	return out
}
