package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// --- Mocks ---

type mockConversational struct {
	kind usecase.ProviderKind
	name string
}

func (m *mockConversational) Kind() usecase.ProviderKind { return m.kind }
func (m *mockConversational) DisplayName() string        { return m.name }

func (m *mockConversational) AnalyzeProducts(ctx context.Context, products []domain.Product) (*domain.ProductAnalysis, error) {
	return &domain.ProductAnalysis{}, nil
}

func (m *mockConversational) GenerateHeroBanner(ctx context.Context, products []domain.Product, analysis *domain.ProductAnalysis) (*domain.MarketingContent, error) {
	return &domain.MarketingContent{}, nil
}

func (m *mockConversational) GenerateProductDescriptions(ctx context.Context, product *domain.Product) (*domain.ProductCopy, error) {
	return &domain.ProductCopy{}, nil
}

func (m *mockConversational) OptimizeContent(ctx context.Context, content any, performance map[string]any) (*domain.MarketingContent, error) {
	return &domain.MarketingContent{}, nil
}

type mockSpeech struct {
	id   string
	name string
}

func (m *mockSpeech) ID() string          { return m.id }
func (m *mockSpeech) DisplayName() string { return m.name }

func (m *mockSpeech) GenerateSpeech(ctx context.Context, text, voiceID string) ([]byte, error) {
	return []byte("audio"), nil
}

func (m *mockSpeech) GetVoices(ctx context.Context) ([]domain.Voice, error) {
	return nil, nil
}

// --- Tests ---

func TestRegistry_ResolveConversational_ByKind(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())
	openai := &mockConversational{kind: usecase.ProviderOpenAI, name: "OpenAI GPT"}
	gemini := &mockConversational{kind: usecase.ProviderGemini, name: "Google Gemini"}
	r.RegisterConversational(openai)
	r.RegisterConversational(gemini)

	got, err := r.ResolveConversational(usecase.ProviderGemini)
	require.NoError(t, err)
	assert.Same(t, gemini, got)
}

func TestRegistry_ResolveConversational_EmptyKindUsesDefault(t *testing.T) {
	r := NewRegistry(usecase.ProviderGemini, "elevenlabs", logger.NewSlogLogger())
	openai := &mockConversational{kind: usecase.ProviderOpenAI}
	gemini := &mockConversational{kind: usecase.ProviderGemini}
	r.RegisterConversational(openai)
	r.RegisterConversational(gemini)

	got, err := r.ResolveConversational("")
	require.NoError(t, err)
	assert.Same(t, gemini, got)
}

func TestRegistry_ResolveConversational_MissFallsBackToFirstRegistered(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())
	gemini := &mockConversational{kind: usecase.ProviderGemini}
	r.RegisterConversational(gemini)

	// openai не зарегистрирован, но пространство непустое
	got, err := r.ResolveConversational(usecase.ProviderOpenAI)
	require.NoError(t, err)
	assert.Same(t, gemini, got)
}

func TestRegistry_ResolveConversational_EmptyNamespace(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())

	_, err := r.ResolveConversational(usecase.ProviderOpenAI)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNoProviderAvailable)
}

func TestRegistry_ResolveSpeech_FallbackPolicy(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())
	eleven := &mockSpeech{id: "elevenlabs", name: "ElevenLabs"}
	r.RegisterSpeech(eleven)

	got, err := r.ResolveSpeech("")
	require.NoError(t, err)
	assert.Same(t, eleven, got)

	got, err = r.ResolveSpeech("unknown-tts")
	require.NoError(t, err)
	assert.Same(t, eleven, got)
}

func TestRegistry_ResolveSpeech_EmptyNamespace(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())

	_, err := r.ResolveSpeech("elevenlabs")
	assert.ErrorIs(t, err, e.ErrNoProviderAvailable)
}

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())
	first := &mockConversational{kind: usecase.ProviderOpenAI, name: "first"}
	second := &mockConversational{kind: usecase.ProviderOpenAI, name: "second"}
	r.RegisterConversational(first)
	r.RegisterConversational(second)

	got, err := r.ResolveConversational(usecase.ProviderOpenAI)
	require.NoError(t, err)
	assert.Same(t, second, got)

	list := r.ListConversational()
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Name)
}

func TestRegistry_ListPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry(usecase.ProviderOpenAI, "elevenlabs", logger.NewSlogLogger())
	r.RegisterConversational(&mockConversational{kind: usecase.ProviderGemini, name: "Google Gemini"})
	r.RegisterConversational(&mockConversational{kind: usecase.ProviderOpenAI, name: "OpenAI GPT"})

	list := r.ListConversational()
	require.Len(t, list, 2)
	assert.Equal(t, "gemini", list[0].ID)
	assert.Equal(t, "openai", list[1].ID)
}
