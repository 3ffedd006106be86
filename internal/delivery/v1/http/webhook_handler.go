package http

import (
	"net/http"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type WebhookHandler struct {
	webhookUC usecase.WebhookUC
	logger    logger.Logger
}

func NewWebhookHandler(webhookUC usecase.WebhookUC, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{webhookUC: webhookUC, logger: logger}
}

type upsertWebhookRequest struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Events   []string `json:"events"`
	IsActive *bool    `json:"isActive,omitempty"`
	Secret   string   `json:"secret,omitempty"`
}

// webhookView скрывает секрет в ответах API.
type webhookView struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	IsActive  bool     `json:"isActive"`
	HasSecret bool     `json:"hasSecret"`
}

func toWebhookView(webhook *domain.Webhook) webhookView {
	return webhookView{
		ID:        webhook.ID,
		Name:      webhook.Name,
		URL:       webhook.URL,
		Events:    webhook.Events,
		IsActive:  webhook.IsActive,
		HasSecret: webhook.Secret != "",
	}
}

// createWebhook
//
//	@Summary		Регистрация вебхука
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		upsertWebhookRequest	true	"Вебхук"
//	@Success		201		{object}	webhookView
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/webhooks [post]
func (h *WebhookHandler) createWebhook(w http.ResponseWriter, r *http.Request) {
	var req upsertWebhookRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	webhook, err := h.webhookUC.CreateWebhook(r.Context(), toUpsertReq(&req))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toWebhookView(webhook))
}

// updateWebhook
//
//	@Summary		Изменение регистрации вебхука
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID вебхука"
//	@Param			request	body		upsertWebhookRequest	true	"Вебхук"
//	@Success		200		{object}	webhookView
//	@Failure		404		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/webhooks/{id} [put]
func (h *WebhookHandler) updateWebhook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req upsertWebhookRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	webhook, err := h.webhookUC.UpdateWebhook(r.Context(), id, toUpsertReq(&req))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWebhookView(webhook))
}

// deleteWebhook
//
//	@Summary		Удаление вебхука
//	@Tags			webhooks
//	@Param			id	path	int	true	"ID вебхука"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/webhooks/{id} [delete]
func (h *WebhookHandler) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.webhookUC.DeleteWebhook(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getWebhook
//
//	@Summary		Вебхук по ID
//	@Tags			webhooks
//	@Produce		json
//	@Param			id	path		int	true	"ID вебхука"
//	@Success		200	{object}	webhookView
//	@Failure		404	{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/webhooks/{id} [get]
func (h *WebhookHandler) getWebhook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	webhook, err := h.webhookUC.GetWebhook(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWebhookView(webhook))
}

// listWebhooks
//
//	@Summary		Список вебхуков
//	@Tags			webhooks
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Security		AdminToken
//	@Router			/webhooks [get]
func (h *WebhookHandler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	webhooks, err := h.webhookUC.ListWebhooks(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	views := make([]webhookView, 0, len(webhooks))
	for i := range webhooks {
		views = append(views, toWebhookView(&webhooks[i]))
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"webhooks": views})
}

func toUpsertReq(req *upsertWebhookRequest) *usecase.UpsertWebhookReq {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &usecase.UpsertWebhookReq{
		Name:     req.Name,
		URL:      req.URL,
		Events:   req.Events,
		IsActive: isActive,
		Secret:   req.Secret,
	}
}
