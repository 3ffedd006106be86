package http

import (
	"encoding/base64"
	"net/http"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// MarketingHandler — админские эндпоинты AI-маркетинга.
// Сбой оркестрации диалоговых провайдеров не отдаётся клиенту как 5xx:
// хендлер подставляет статический контент и помечает ответ fallback: true.
type MarketingHandler struct {
	marketingUC usecase.MarketingUC
	logger      logger.Logger
}

func NewMarketingHandler(marketingUC usecase.MarketingUC, logger logger.Logger) *MarketingHandler {
	return &MarketingHandler{marketingUC: marketingUC, logger: logger}
}

type analyzeRequest struct {
	ProductIDs []int64 `json:"productIds"`
}

type generateBannerRequest struct {
	ProductIDs []int64                 `json:"productIds"`
	AIProvider string                  `json:"aiProvider"`
	Analysis   *domain.ProductAnalysis `json:"analysis,omitempty"`
}

type selectBestRequest struct {
	OpenAIContent *domain.MarketingContent `json:"openaiContent"`
	GeminiContent *domain.MarketingContent `json:"geminiContent"`
}

type optimizeRequest struct {
	Content     map[string]any `json:"content"`
	Performance map[string]any `json:"performance"`
}

type applyBannerRequest struct {
	Content *domain.MarketingContent `json:"content"`
}

type generateAudioRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

// analyzeProducts
//
//	@Summary		AI-анализ каталога
//	@Description	Анализирует выбранные товары (или весь активный каталог) диалоговым провайдером
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		analyzeRequest	true	"ID товаров (пустой список — весь каталог)"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/analyze [post]
func (m *MarketingHandler) analyzeProducts(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	analysis, err := m.marketingUC.AnalyzeProducts(r.Context(), usecase.NewAnalyzeProductsReq(req.ProductIDs))
	if err != nil {
		m.logger.Warnf("analyze failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"analysis": fallbackAnalysis(),
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback": false,
		"analysis": analysis,
	})
}

// generateBanner
//
//	@Summary		Генерация hero-баннера
//	@Description	Генерирует контент баннера выбранным провайдером (aiProvider: openai|gemini)
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		generateBannerRequest	true	"Параметры генерации"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/generate-banner [post]
func (m *MarketingHandler) generateBanner(w http.ResponseWriter, r *http.Request) {
	var req generateBannerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	content, err := m.marketingUC.GenerateHeroBanner(r.Context(), usecase.NewGenerateBannerReq(
		req.ProductIDs, usecase.ProviderKind(req.AIProvider), req.Analysis,
	))
	if err != nil {
		m.logger.Warnf("banner generation failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"content":  fallbackHeroBanner(),
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback": false,
		"content":  content,
	})
}

// generateDual
//
//	@Summary		Двухпровайдерная генерация с арбитражем
//	@Description	Запускает OpenAI и Gemini параллельно и выбирает лучший контент
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		analyzeRequest	true	"ID товаров"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/generate-dual [post]
func (m *MarketingHandler) generateDual(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := m.marketingUC.GenerateDualContent(r.Context(), usecase.NewAnalyzeProductsReq(req.ProductIDs))
	if err != nil {
		m.logger.Warnf("dual generation failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"result": &domain.DualAIResult{
				BestContent: fallbackHeroBanner(),
				Comparison:  "Static fallback content: AI providers unavailable",
			},
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback": false,
		"result":   result,
	})
}

// selectBest
//
//	@Summary		Арбитраж двух готовых вариантов контента
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		selectBestRequest	true	"Контент обоих провайдеров"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/select-best [post]
func (m *MarketingHandler) selectBest(w http.ResponseWriter, r *http.Request) {
	var req selectBestRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	best, err := m.marketingUC.SelectBestContent(r.Context(), req.OpenAIContent, req.GeminiContent)
	if err != nil {
		m.logger.Warnf("select-best failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"content":  fallbackHeroBanner(),
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback": false,
		"content":  best,
	})
}

// productDescription
//
//	@Summary		Генерация продающего описания товара
//	@Tags			ai-marketing
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/product-description/{id} [post]
func (m *MarketingHandler) productDescription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	productCopy, err := m.marketingUC.GenerateProductDescriptions(r.Context(), id)
	if err != nil {
		m.logger.Warnf("product description failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback":    true,
			"description": fallbackProductCopy(),
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback":    false,
		"description": productCopy,
	})
}

// optimizeContent
//
//	@Summary		Оптимизация контента по метрикам конверсии
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		optimizeRequest	true	"Контент и метрики"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/optimize [post]
func (m *MarketingHandler) optimizeContent(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	optimized, err := m.marketingUC.OptimizeForConversion(r.Context(), req.Content, req.Performance)
	if err != nil {
		m.logger.Warnf("optimize failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"content":  fallbackHeroBanner(),
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback": false,
		"content":  optimized,
	})
}

// applyBanner
//
//	@Summary		Применение баннера на витрину
//	@Description	Сохраняет контент как активный hero-баннер
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		applyBannerRequest	true	"Контент баннера"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/apply-banner [post]
func (m *MarketingHandler) applyBanner(w http.ResponseWriter, r *http.Request) {
	var req applyBannerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.Content == nil {
		WriteError(w, e.ErrMissingFields)
		return
	}

	banner, err := m.marketingUC.ApplyHeroBanner(r.Context(), req.Content)
	if err != nil {
		m.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":        banner.ID,
		"isActive":  banner.IsActive,
		"createdAt": banner.CreatedAt,
	})
}

// productAudio
//
//	@Summary		Синтез аудиоролика по тексту
//	@Description	Генерирует речь TTS-провайдером и сохраняет mp3 в объектное хранилище
//	@Tags			ai-marketing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		generateAudioRequest	true	"Текст и голос"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/ai-marketing/product-audio [post]
func (m *MarketingHandler) productAudio(w http.ResponseWriter, r *http.Request) {
	var req generateAudioRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := m.marketingUC.GenerateProductAudio(r.Context(), usecase.NewGenerateAudioReq(req.Text, req.VoiceID))
	if err != nil {
		m.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"objectKey": res.ObjectKey,
		"mimeType":  res.MimeType,
		"audio":     base64.StdEncoding.EncodeToString(res.Audio),
	})
}

// listVoices
//
//	@Summary		Доступные голоса TTS-провайдера
//	@Tags			ai-marketing
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Security		AdminToken
//	@Router			/ai-marketing/voices [get]
func (m *MarketingHandler) listVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := m.marketingUC.ListVoices(r.Context())
	if err != nil {
		m.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"voices": voices})
}

// listProviders
//
//	@Summary		Зарегистрированные диалоговые провайдеры
//	@Tags			ai-marketing
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Security		AdminToken
//	@Router			/ai-marketing/providers [get]
func (m *MarketingHandler) listProviders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"providers": m.marketingUC.ListProviders(),
	})
}
