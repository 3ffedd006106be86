package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/repository/pgdb/converter"
	"github.com/thriftysouq/go-backend/pkg/e"
)

// WebhookRepo реализует репозиторий регистраций вебхуков поверх PostgreSQL.
// Список событий хранится как text[].
type WebhookRepo struct {
	pool *pgxpool.Pool
	conv converter.WebhookConverter
}

func NewWebhookRepo(pool *pgxpool.Pool, conv converter.WebhookConverter) *WebhookRepo {
	return &WebhookRepo{
		pool: pool,
		conv: conv,
	}
}

const webhookColumns = `
	id, name, url, events, is_active, secret, created_at, updated_at
`

func (w *WebhookRepo) Create(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	model := w.conv.ToModel(webhook)
	query := `
		INSERT INTO webhooks (name, url, events, is_active, secret)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := w.pool.QueryRow(ctx, query,
		model.Name, model.URL, model.Events, model.IsActive, model.Secret,
	).Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: webhook %q already exists", whereami.WhereAmI(), webhook.Name)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToEntity(model), nil
}

func (w *WebhookRepo) Update(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	model := w.conv.ToModel(webhook)
	query := `
		UPDATE webhooks
		SET name = $1, url = $2, events = $3, is_active = $4, secret = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + webhookColumns + `;
	`

	err := w.pool.QueryRow(ctx, query,
		model.Name, model.URL, model.Events, model.IsActive, model.Secret, model.ID,
	).Scan(
		&model.ID, &model.Name, &model.URL, &model.Events,
		&model.IsActive, &model.Secret, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrWebhookNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToEntity(model), nil
}

func (w *WebhookRepo) Delete(ctx context.Context, id int64) error {
	result, err := w.pool.Exec(ctx, `DELETE FROM webhooks WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrWebhookNotFound)
	}

	return nil
}

func (w *WebhookRepo) GetByID(ctx context.Context, id int64) (*domain.Webhook, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhooks WHERE id = $1`

	var model converter.WebhookModel
	err := w.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.URL, &model.Events,
		&model.IsActive, &model.Secret, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrWebhookNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToEntity(&model), nil
}

func (w *WebhookRepo) List(ctx context.Context) ([]domain.Webhook, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhooks ORDER BY id`

	rows, err := w.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return w.scanWebhooks(rows)
}

// GetActiveByEvent возвращает активные вебхуки, подписанные на событие.
func (w *WebhookRepo) GetActiveByEvent(ctx context.Context, event string) ([]domain.Webhook, error) {
	query := `
		SELECT ` + webhookColumns + `
		FROM webhooks
		WHERE is_active AND $1 = ANY(events)
		ORDER BY id
	`

	rows, err := w.pool.Query(ctx, query, event)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return w.scanWebhooks(rows)
}

func (w *WebhookRepo) scanWebhooks(rows pgx.Rows) ([]domain.Webhook, error) {
	models := make([]converter.WebhookModel, 0)
	for rows.Next() {
		var model converter.WebhookModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.URL, &model.Events,
			&model.IsActive, &model.Secret, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToArrEntity(models), nil
}
