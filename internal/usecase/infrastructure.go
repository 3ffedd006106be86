package usecase

import (
	"context"

	"github.com/thriftysouq/go-backend/internal/domain"
)

// ProviderKind — закрытое множество идентификаторов диалоговых провайдеров.
type ProviderKind string

const (
	ProviderOpenAI ProviderKind = "openai"
	ProviderGemini ProviderKind = "gemini"
)

// ConversationalProvider — контракт диалогового AI-провайдера.
// Обе реализации (OpenAI, Gemini) взаимозаменяемы: структурированный срез
// каталога на входе, разобранный JSON на выходе.
type ConversationalProvider interface {
	Kind() ProviderKind
	DisplayName() string
	AnalyzeProducts(ctx context.Context, products []domain.Product) (*domain.ProductAnalysis, error)
	// GenerateHeroBanner при analysis == nil вычисляет анализ самостоятельно.
	GenerateHeroBanner(ctx context.Context, products []domain.Product, analysis *domain.ProductAnalysis) (*domain.MarketingContent, error)
	GenerateProductDescriptions(ctx context.Context, product *domain.Product) (*domain.ProductCopy, error)
	OptimizeContent(ctx context.Context, content any, performance map[string]any) (*domain.MarketingContent, error)
}

// SpeechProvider — контракт TTS-провайдера.
type SpeechProvider interface {
	ID() string
	DisplayName() string
	// GenerateSpeech возвращает готовый аудиобуфер; пустой voiceID — голос по умолчанию.
	GenerateSpeech(ctx context.Context, text, voiceID string) ([]byte, error)
	GetVoices(ctx context.Context) ([]domain.Voice, error)
}

// ProviderRegistry — реестр провайдеров с политикой fallback на первый
// зарегистрированный при промахе по id (доступность важнее точного пиннинга).
type ProviderRegistry interface {
	ResolveConversational(kind ProviderKind) (ConversationalProvider, error)
	ResolveSpeech(id string) (SpeechProvider, error)
	ListConversational() []ProviderDescriptor
	ListSpeech() []ProviderDescriptor
}

// EmbeddingsInfra — получение векторного представления текста.
type EmbeddingsInfra interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// EventDispatcher — доставка доменных событий подписчикам.
// Вызовы best-effort: ошибка доставки не влияет на доменную операцию.
type EventDispatcher interface {
	TriggerOrderCreated(ctx context.Context, order *domain.Order, lines []domain.OrderLine)
	TriggerOrderStatusChanged(ctx context.Context, order *domain.Order, oldStatus, newStatus domain.OrderStatus)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
