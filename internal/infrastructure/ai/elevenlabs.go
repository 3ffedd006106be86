package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

const elevenLabsModelID = "eleven_multilingual_v2"

// ElevenLabsProvider — TTS-провайдер поверх REST API ElevenLabs.
type ElevenLabsProvider struct {
	cfg    *cfg.AICfg
	http   *http.Client
	logger logger.Logger
}

func NewElevenLabsProvider(aiCfg *cfg.AICfg, log logger.Logger) *ElevenLabsProvider {
	return &ElevenLabsProvider{
		cfg:    aiCfg,
		http:   &http.Client{Timeout: aiCfg.RequestTimeout},
		logger: log,
	}
}

func (p *ElevenLabsProvider) ID() string {
	return "elevenlabs"
}

func (p *ElevenLabsProvider) DisplayName() string {
	return "ElevenLabs"
}

// GenerateSpeech синтезирует mp3 по тексту. Пустой voiceID — голос из конфигурации.
func (p *ElevenLabsProvider) GenerateSpeech(ctx context.Context, text, voiceID string) ([]byte, error) {
	const op = "ai.ElevenLabsProvider.GenerateSpeech"

	if p.cfg.ElevenLabsKey == "" {
		return nil, e.Wrap(op, e.ErrMissingAPIKey)
	}
	if text == "" {
		return nil, e.Wrap(op, e.ErrEmptyText)
	}

	if voiceID == "" {
		voiceID = p.cfg.ElevenLabsVoiceID
	}

	body, err := json.Marshal(map[string]any{
		"text":     text,
		"model_id": elevenLabsModelID,
		"voice_settings": map[string]any{
			"stability":        0.5,
			"similarity_boost": 0.75,
		},
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", p.cfg.ElevenLabsBaseURL, voiceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", p.cfg.ElevenLabsKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrProviderCall))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, e.Wrap(op, e.Wrap(fmt.Sprintf("status %d: %s", resp.StatusCode, detail), e.ErrProviderCall))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(audio) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyResponse)
	}

	return audio, nil
}

// GetVoices возвращает доступные голоса аккаунта.
func (p *ElevenLabsProvider) GetVoices(ctx context.Context) ([]domain.Voice, error) {
	const op = "ai.ElevenLabsProvider.GetVoices"

	if p.cfg.ElevenLabsKey == "" {
		return nil, e.Wrap(op, e.ErrMissingAPIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.ElevenLabsBaseURL+"/v1/voices", nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("xi-api-key", p.cfg.ElevenLabsKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrProviderCall))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, e.Wrap(fmt.Sprintf("status %d", resp.StatusCode), e.ErrProviderCall))
	}

	var payload struct {
		Voices []struct {
			VoiceID  string `json:"voice_id"`
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrUnparsableResponse))
	}

	voices := make([]domain.Voice, 0, len(payload.Voices))
	for _, v := range payload.Voices {
		voices = append(voices, domain.Voice{
			ID:       v.VoiceID,
			Name:     v.Name,
			Category: v.Category,
		})
	}

	return voices, nil
}
