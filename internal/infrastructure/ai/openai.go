package ai

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/jitter"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

const (
	openAIBackoffBase = 500 * time.Millisecond
	openAIBackoffMax  = 8 * time.Second
)

// OpenAIProvider — диалоговый провайдер поверх Chat Completions API.
// Он же отдаёт эмбеддинги текста для векторного поиска.
type OpenAIProvider struct {
	client *openai.Client
	cfg    *cfg.AICfg
	logger logger.Logger
}

func NewOpenAIProvider(aiCfg *cfg.AICfg, log logger.Logger) *OpenAIProvider {
	conf := openai.DefaultConfig(aiCfg.OpenAIKey)
	conf.HTTPClient = &http.Client{Timeout: aiCfg.RequestTimeout}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(conf),
		cfg:    aiCfg,
		logger: log,
	}
}

func (p *OpenAIProvider) Kind() usecase.ProviderKind {
	return usecase.ProviderOpenAI
}

func (p *OpenAIProvider) DisplayName() string {
	return "OpenAI GPT"
}

func (p *OpenAIProvider) AnalyzeProducts(ctx context.Context, products []domain.Product) (*domain.ProductAnalysis, error) {
	const op = "ai.OpenAIProvider.AnalyzeProducts"

	raw, err := p.complete(ctx, analysisSystemRole, analysisPrompt(products))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var analysis domain.ProductAnalysis
	if err := decodeResponse(raw, &analysis); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &analysis, nil
}

func (p *OpenAIProvider) GenerateHeroBanner(ctx context.Context, products []domain.Product, analysis *domain.ProductAnalysis) (*domain.MarketingContent, error) {
	const op = "ai.OpenAIProvider.GenerateHeroBanner"

	if analysis == nil {
		computed, err := p.AnalyzeProducts(ctx, products)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		analysis = computed
	}

	raw, err := p.complete(ctx, analysisSystemRole, heroBannerPrompt(products, analysis))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var content domain.MarketingContent
	if err := decodeResponse(raw, &content); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &content, nil
}

func (p *OpenAIProvider) GenerateProductDescriptions(ctx context.Context, product *domain.Product) (*domain.ProductCopy, error) {
	const op = "ai.OpenAIProvider.GenerateProductDescriptions"

	raw, err := p.complete(ctx, analysisSystemRole, productDescriptionsPrompt(product))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var productCopy domain.ProductCopy
	if err := decodeResponse(raw, &productCopy); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &productCopy, nil
}

func (p *OpenAIProvider) OptimizeContent(ctx context.Context, content any, performance map[string]any) (*domain.MarketingContent, error) {
	const op = "ai.OpenAIProvider.OptimizeContent"

	prompt, err := optimizePrompt(content, performance)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	raw, err := p.complete(ctx, analysisSystemRole, prompt)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var optimized domain.MarketingContent
	if err := decodeResponse(raw, &optimized); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &optimized, nil
}

// EmbedText возвращает вектор текста моделью эмбеддингов из конфигурации.
func (p *OpenAIProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	const op = "ai.OpenAIProvider.EmbedText"

	if p.cfg.OpenAIKey == "" {
		return nil, e.Wrap(op, e.ErrMissingAPIKey)
	}
	if text == "" {
		return nil, e.Wrap(op, e.ErrEmptyText)
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(p.cfg.OpenAIEmbeddingModel),
	})
	if err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrProviderCall))
	}
	if len(resp.Data) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyResponse)
	}

	return resp.Data[0].Embedding, nil
}

// complete выполняет один диалоговый запрос с повторами.
// Повторы живут только здесь, на транспортном уровне: выше по стеку
// каждый логический вызов провайдера остаётся ровно одним вызовом.
func (p *OpenAIProvider) complete(ctx context.Context, system, prompt string) (string, error) {
	if p.cfg.OpenAIKey == "" {
		return "", e.ErrMissingAPIKey
	}

	req := openai.ChatCompletionRequest{
		Model: p.cfg.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(openAIBackoffBase, openAIBackoffMax, attempt-1, jitter.DefaultJitter)
			p.logger.Warnf("openai: retry %d/%d after %s: %v", attempt, p.cfg.MaxRetries, backoff, lastErr)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = e.ErrEmptyResponse
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", e.Wrap(lastErr.Error(), e.ErrProviderCall)
}
