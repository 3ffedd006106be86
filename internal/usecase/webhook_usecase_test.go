package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type mockWebhookRepo struct {
	byID map[int64]*domain.Webhook
}

func newMockWebhookRepo() *mockWebhookRepo {
	return &mockWebhookRepo{byID: make(map[int64]*domain.Webhook)}
}

func (m *mockWebhookRepo) Create(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	webhook.ID = int64(len(m.byID) + 1)
	m.byID[webhook.ID] = webhook
	return webhook, nil
}

func (m *mockWebhookRepo) Update(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	if _, ok := m.byID[webhook.ID]; !ok {
		return nil, e.ErrWebhookNotFound
	}
	m.byID[webhook.ID] = webhook
	return webhook, nil
}

func (m *mockWebhookRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return e.ErrWebhookNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockWebhookRepo) GetByID(ctx context.Context, id int64) (*domain.Webhook, error) {
	webhook, ok := m.byID[id]
	if !ok {
		return nil, e.ErrWebhookNotFound
	}
	return webhook, nil
}

func (m *mockWebhookRepo) List(ctx context.Context) ([]domain.Webhook, error) {
	result := make([]domain.Webhook, 0, len(m.byID))
	for _, w := range m.byID {
		result = append(result, *w)
	}
	return result, nil
}

func (m *mockWebhookRepo) GetActiveByEvent(ctx context.Context, event string) ([]domain.Webhook, error) {
	var result []domain.Webhook
	for _, w := range m.byID {
		if w.IsActive && w.SubscribedTo(event) {
			result = append(result, *w)
		}
	}
	return result, nil
}

func TestCreateWebhook_Validation(t *testing.T) {
	uc := NewWebhookUC(newMockWebhookRepo(), logger.NewSlogLogger())

	_, err := uc.CreateWebhook(context.Background(), &UpsertWebhookReq{
		Name:   "erp",
		Events: []string{domain.EventOrderCreated},
	})
	assert.ErrorIs(t, err, e.ErrWebhookURLRequired)

	_, err = uc.CreateWebhook(context.Background(), &UpsertWebhookReq{
		Name: "erp",
		URL:  "https://erp.example.com/hook",
	})
	assert.ErrorIs(t, err, e.ErrNoEvents)
}

func TestUpdateWebhook_EmptySecretKeepsExisting(t *testing.T) {
	repo := newMockWebhookRepo()
	uc := NewWebhookUC(repo, logger.NewSlogLogger())

	created, err := uc.CreateWebhook(context.Background(), &UpsertWebhookReq{
		Name:     "erp",
		URL:      "https://erp.example.com/hook",
		Events:   []string{domain.EventOrderCreated},
		IsActive: true,
		Secret:   "s3cret",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateWebhook(context.Background(), created.ID, &UpsertWebhookReq{
		Name:     "erp-v2",
		URL:      "https://erp.example.com/hook/v2",
		Events:   []string{domain.EventOrderCreated, domain.EventOrderStatusChanged},
		IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "erp-v2", updated.Name)
	assert.Equal(t, "s3cret", updated.Secret, "blank secret must not erase the stored one")

	rotated, err := uc.UpdateWebhook(context.Background(), created.ID, &UpsertWebhookReq{
		Name:     "erp-v2",
		URL:      "https://erp.example.com/hook/v2",
		Events:   []string{domain.EventOrderCreated},
		IsActive: true,
		Secret:   "n3w-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "n3w-secret", rotated.Secret)
}

func TestUpdateWebhook_NotFound(t *testing.T) {
	uc := NewWebhookUC(newMockWebhookRepo(), logger.NewSlogLogger())

	_, err := uc.UpdateWebhook(context.Background(), 404, &UpsertWebhookReq{
		URL:    "https://erp.example.com/hook",
		Events: []string{domain.EventOrderCreated},
	})
	assert.ErrorIs(t, err, e.ErrWebhookNotFound)
}

func TestDeleteWebhook(t *testing.T) {
	repo := newMockWebhookRepo()
	uc := NewWebhookUC(repo, logger.NewSlogLogger())

	created, err := uc.CreateWebhook(context.Background(), &UpsertWebhookReq{
		Name:     "erp",
		URL:      "https://erp.example.com/hook",
		Events:   []string{domain.EventOrderCreated},
		IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteWebhook(context.Background(), created.ID))
	assert.ErrorIs(t, uc.DeleteWebhook(context.Background(), created.ID), e.ErrWebhookNotFound)
}
