// Package webhook доставляет доменные события внешним подписчикам по HTTP.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// Dispatcher рассылает события активным подпискам последовательно,
// с независимым таймаутом на каждую доставку. Ошибка одного подписчика
// логируется и не мешает остальным: доставка best-effort.
type Dispatcher struct {
	webhookRepo usecase.WebhookRepository
	http        *http.Client
	cfg         *cfg.WebhookCfg
	logger      logger.Logger
}

func NewDispatcher(webhookRepo usecase.WebhookRepository, cfg *cfg.WebhookCfg, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		webhookRepo: webhookRepo,
		http:        &http.Client{Timeout: cfg.DeliveryTimeout},
		cfg:         cfg,
		logger:      log,
	}
}

func (d *Dispatcher) TriggerOrderCreated(ctx context.Context, order *domain.Order, lines []domain.OrderLine) {
	d.dispatch(ctx, domain.EventOrderCreated, usecase.NewOrderCreatedPayload(order, lines))
}

func (d *Dispatcher) TriggerOrderStatusChanged(ctx context.Context, order *domain.Order, oldStatus, newStatus domain.OrderStatus) {
	d.dispatch(ctx, domain.EventOrderStatusChanged, usecase.NewOrderStatusChangedPayload(order, oldStatus, newStatus))
}

func (d *Dispatcher) dispatch(ctx context.Context, event string, payload *usecase.WebhookPayload) {
	subscribers, err := d.webhookRepo.GetActiveByEvent(ctx, event)
	if err != nil {
		d.logger.Errorf(err, "webhook: failed to load subscribers for %q", event)
		return
	}
	if len(subscribers) == 0 {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		d.logger.Errorf(err, "webhook: failed to marshal %q payload", event)
		return
	}

	delivered := 0
	for _, subscriber := range subscribers {
		if err := d.deliver(ctx, &subscriber, body); err != nil {
			d.logger.Warnf("webhook: delivery to %q (%s) failed: %v", subscriber.Name, subscriber.URL, err)
			continue
		}
		delivered++
	}

	d.logger.Infof("webhook: %q delivered to %d/%d subscribers", event, delivered, len(subscribers))
}

func (d *Dispatcher) deliver(ctx context.Context, subscriber *domain.Webhook, body []byte) error {
	deliveryCtx, cancel := context.WithTimeout(ctx, d.cfg.DeliveryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(deliveryCtx, http.MethodPost, subscriber.URL, bytes.NewReader(body))
	if err != nil {
		return e.Wrap("build request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.cfg.UserAgent)
	if subscriber.Secret != "" {
		req.Header.Set("X-Webhook-Signature", Sign(subscriber.Secret, body))
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("subscriber responded %d", resp.StatusCode)
	}

	return nil
}

// Sign возвращает значение заголовка X-Webhook-Signature:
// "sha256=" + hex(HMAC-SHA256(secret, body)).
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
