package ai

import (
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// Registry держит два независимых пространства имён провайдеров:
// диалоговые и TTS. Регистрация идемпотентна (последняя побеждает).
//
// Политика разрешения осознанно жертвует точным пиннингом ради доступности:
// промах по id отдаёт первого зарегистрированного провайдера пространства,
// и только пустое пространство — ошибка конфигурации.
type Registry struct {
	conversational map[usecase.ProviderKind]usecase.ConversationalProvider
	speech         map[string]usecase.SpeechProvider

	// порядок регистрации, детерминирует fallback "первый зарегистрированный"
	conversationalOrder []usecase.ProviderKind
	speechOrder         []string

	defaultKind     usecase.ProviderKind
	defaultSpeechID string
	logger          logger.Logger
}

func NewRegistry(defaultKind usecase.ProviderKind, defaultSpeechID string, logger logger.Logger) *Registry {
	return &Registry{
		conversational:  make(map[usecase.ProviderKind]usecase.ConversationalProvider),
		speech:          make(map[string]usecase.SpeechProvider),
		defaultKind:     defaultKind,
		defaultSpeechID: defaultSpeechID,
		logger:          logger,
	}
}

// RegisterConversational добавляет или заменяет диалогового провайдера.
func (r *Registry) RegisterConversational(provider usecase.ConversationalProvider) {
	kind := provider.Kind()
	if _, exists := r.conversational[kind]; !exists {
		r.conversationalOrder = append(r.conversationalOrder, kind)
	}
	r.conversational[kind] = provider
}

// RegisterSpeech добавляет или заменяет TTS-провайдера.
func (r *Registry) RegisterSpeech(provider usecase.SpeechProvider) {
	id := provider.ID()
	if _, exists := r.speech[id]; !exists {
		r.speechOrder = append(r.speechOrder, id)
	}
	r.speech[id] = provider
}

// ResolveConversational возвращает провайдера по kind.
// Пустой kind — провайдер по умолчанию; промах — первый зарегистрированный.
func (r *Registry) ResolveConversational(kind usecase.ProviderKind) (usecase.ConversationalProvider, error) {
	if kind == "" {
		kind = r.defaultKind
	}

	if provider, ok := r.conversational[kind]; ok {
		return provider, nil
	}

	if len(r.conversationalOrder) > 0 {
		fallback := r.conversationalOrder[0]
		r.logger.Warnf("conversational provider %q is not registered, falling back to %q", kind, fallback)
		return r.conversational[fallback], nil
	}

	return nil, e.Wrap(string(kind), e.ErrNoProviderAvailable)
}

// ResolveSpeech — та же политика в пространстве TTS.
func (r *Registry) ResolveSpeech(id string) (usecase.SpeechProvider, error) {
	if id == "" {
		id = r.defaultSpeechID
	}

	if provider, ok := r.speech[id]; ok {
		return provider, nil
	}

	if len(r.speechOrder) > 0 {
		fallback := r.speechOrder[0]
		r.logger.Warnf("speech provider %q is not registered, falling back to %q", id, fallback)
		return r.speech[fallback], nil
	}

	return nil, e.Wrap(id, e.ErrNoProviderAvailable)
}

// ListConversational возвращает пары id/имя для выпадающих списков UI.
func (r *Registry) ListConversational() []usecase.ProviderDescriptor {
	result := make([]usecase.ProviderDescriptor, 0, len(r.conversationalOrder))
	for _, kind := range r.conversationalOrder {
		result = append(result, usecase.ProviderDescriptor{
			ID:   string(kind),
			Name: r.conversational[kind].DisplayName(),
		})
	}
	return result
}

// ListSpeech возвращает пары id/имя TTS-провайдеров.
func (r *Registry) ListSpeech() []usecase.ProviderDescriptor {
	result := make([]usecase.ProviderDescriptor, 0, len(r.speechOrder))
	for _, id := range r.speechOrder {
		result = append(result, usecase.ProviderDescriptor{
			ID:   id,
			Name: r.speech[id].DisplayName(),
		})
	}
	return result
}
