package usecase

import (
	"context"
	"strings"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// WebhookUseCase — административное управление регистрациями вебхуков.
type WebhookUseCase struct {
	webhookRepo WebhookRepository
	logger      logger.Logger
}

func NewWebhookUC(webhookRepo WebhookRepository, logger logger.Logger) *WebhookUseCase {
	return &WebhookUseCase{
		webhookRepo: webhookRepo,
		logger:      logger,
	}
}

func (w *WebhookUseCase) CreateWebhook(ctx context.Context, req *UpsertWebhookReq) (*domain.Webhook, error) {
	const op = "WebhookUseCase.CreateWebhook"

	if err := w.validate(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	webhook := domain.NewWebhook(req.Name, req.URL, req.Events, req.Secret)
	webhook.IsActive = req.IsActive

	created, err := w.webhookRepo.Create(ctx, webhook)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

func (w *WebhookUseCase) UpdateWebhook(ctx context.Context, id int64, req *UpsertWebhookReq) (*domain.Webhook, error) {
	const op = "WebhookUseCase.UpdateWebhook"

	if err := w.validate(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	webhook, err := w.webhookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	webhook.Name = req.Name
	webhook.URL = req.URL
	webhook.Events = req.Events
	webhook.IsActive = req.IsActive
	if req.Secret != "" {
		webhook.Secret = req.Secret
	}

	updated, err := w.webhookRepo.Update(ctx, webhook)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (w *WebhookUseCase) DeleteWebhook(ctx context.Context, id int64) error {
	const op = "WebhookUseCase.DeleteWebhook"

	if err := w.webhookRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (w *WebhookUseCase) GetWebhook(ctx context.Context, id int64) (*domain.Webhook, error) {
	const op = "WebhookUseCase.GetWebhook"

	webhook, err := w.webhookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return webhook, nil
}

func (w *WebhookUseCase) ListWebhooks(ctx context.Context) ([]domain.Webhook, error) {
	const op = "WebhookUseCase.ListWebhooks"

	webhooks, err := w.webhookRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return webhooks, nil
}

func (w *WebhookUseCase) validate(req *UpsertWebhookReq) error {
	if strings.TrimSpace(req.URL) == "" {
		return e.ErrWebhookURLRequired
	}

	if len(req.Events) == 0 {
		return e.ErrNoEvents
	}

	return nil
}
