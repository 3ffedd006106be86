package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type stubWebhookRepo struct {
	subscribers []domain.Webhook
}

func (s *stubWebhookRepo) Create(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	return webhook, nil
}

func (s *stubWebhookRepo) Update(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	return webhook, nil
}

func (s *stubWebhookRepo) Delete(ctx context.Context, id int64) error { return nil }

func (s *stubWebhookRepo) GetByID(ctx context.Context, id int64) (*domain.Webhook, error) {
	return nil, nil
}

func (s *stubWebhookRepo) List(ctx context.Context) ([]domain.Webhook, error) { return nil, nil }

func (s *stubWebhookRepo) GetActiveByEvent(ctx context.Context, event string) ([]domain.Webhook, error) {
	return s.subscribers, nil
}

func testWebhookCfg() *cfg.WebhookCfg {
	return &cfg.WebhookCfg{
		UserAgent:       "ThriftySouq-Webhook/1.0",
		DeliveryTimeout: 2 * time.Second,
	}
}

func TestSign_GoldenValue(t *testing.T) {
	got := Sign("s3cret", []byte(`{"a":1}`))
	assert.Equal(t, "sha256=5910e62016ef5034272c926c27071992a465c2335cecf41851bda071577f4f6d", got)
}

func TestDispatch_DeliveriesAreIndependent(t *testing.T) {
	var first, third atomic.Int64

	okHandler := func(counter *atomic.Int64) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			counter.Add(1)
			w.WriteHeader(http.StatusOK)
		}
	}

	srv1 := httptest.NewServer(okHandler(&first))
	defer srv1.Close()
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv2.Close()
	srv3 := httptest.NewServer(okHandler(&third))
	defer srv3.Close()

	repo := &stubWebhookRepo{subscribers: []domain.Webhook{
		{Name: "first", URL: srv1.URL, IsActive: true, Events: []string{domain.EventOrderCreated}},
		{Name: "broken", URL: srv2.URL, IsActive: true, Events: []string{domain.EventOrderCreated}},
		{Name: "third", URL: srv3.URL, IsActive: true, Events: []string{domain.EventOrderCreated}},
	}}

	d := NewDispatcher(repo, testWebhookCfg(), logger.NewSlogLogger())
	d.TriggerOrderCreated(context.Background(), &domain.Order{ID: 1, OrderNumber: "TS-AB12CD34"}, nil)

	assert.EqualValues(t, 1, first.Load(), "subscriber before the failing one must be delivered")
	assert.EqualValues(t, 1, third.Load(), "subscriber after the failing one must be delivered")
}

func TestDispatch_SignatureAndHeaders(t *testing.T) {
	type received struct {
		signature string
		userAgent string
		body      []byte
	}
	got := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- received{
			signature: r.Header.Get("X-Webhook-Signature"),
			userAgent: r.Header.Get("User-Agent"),
			body:      body,
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := &stubWebhookRepo{subscribers: []domain.Webhook{
		{Name: "erp", URL: srv.URL, IsActive: true, Secret: "s3cret", Events: []string{domain.EventOrderCreated}},
	}}

	d := NewDispatcher(repo, testWebhookCfg(), logger.NewSlogLogger())
	d.TriggerOrderCreated(context.Background(), &domain.Order{ID: 1, OrderNumber: "TS-AB12CD34", Status: domain.OrderPending}, nil)

	select {
	case r := <-got:
		assert.Equal(t, "ThriftySouq-Webhook/1.0", r.userAgent)
		assert.Equal(t, Sign("s3cret", r.body), r.signature, "signature must match the delivered body")

		var payload map[string]any
		require.NoError(t, json.Unmarshal(r.body, &payload))
		assert.Equal(t, domain.EventOrderCreated, payload["event"])
	case <-time.After(time.Second):
		t.Fatal("subscriber was not called")
	}
}

func TestDispatch_NoSignatureWithoutSecret(t *testing.T) {
	got := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	repo := &stubWebhookRepo{subscribers: []domain.Webhook{
		{Name: "plain", URL: srv.URL, IsActive: true, Events: []string{domain.EventOrderStatusChanged}},
	}}

	d := NewDispatcher(repo, testWebhookCfg(), logger.NewSlogLogger())
	d.TriggerOrderStatusChanged(context.Background(), &domain.Order{ID: 1}, domain.OrderPending, domain.OrderProcessing)

	select {
	case sig := <-got:
		assert.Empty(t, sig)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not called")
	}
}
