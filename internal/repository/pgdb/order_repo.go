package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/repository/pgdb/converter"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

const orderColumns = `
	id, order_number, customer_name, customer_email, customer_phone,
	customer_address, payment_method, status, subtotal, shipping, total,
	created_at, updated_at
`

// Create вставляет заказ вместе с позициями в рамках транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order, lines []domain.OrderLine) (*domain.Order, []domain.OrderLine, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)
	query := `
		INSERT INTO orders (
			order_number, customer_name, customer_email, customer_phone,
			customer_address, payment_method, status, subtotal, shipping, total
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.OrderNumber, model.CustomerName, model.CustomerEmail,
		model.CustomerPhone, model.CustomerAddress, model.PaymentMethod,
		model.Status, model.Subtotal, model.Shipping, model.Total,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, product_id, product_name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	lineModels := make([]converter.OrderLineModel, 0, len(lines))
	for _, line := range lines {
		lineModel := o.conv.ToLineModel(&line)
		lineModel.OrderID = model.ID

		if err := tx.QueryRow(ctx, lineQuery,
			lineModel.OrderID, lineModel.ProductID, lineModel.ProductName,
			lineModel.Price, lineModel.Quantity,
		).Scan(&lineModel.ID); err != nil {
			return nil, nil, e.Wrap(whereami.WhereAmI(), err)
		}

		lineModels = append(lineModels, *lineModel)
	}

	return o.conv.ToEntity(model), o.conv.ToArrLineEntity(lineModels), nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.OrderNumber, &model.CustomerName, &model.CustomerEmail,
		&model.CustomerPhone, &model.CustomerAddress, &model.PaymentMethod,
		&model.Status, &model.Subtotal, &model.Shipping, &model.Total,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

func (o *OrderRepo) GetLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, product_name, price, quantity
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.OrderLineModel, 0)
	for rows.Next() {
		var model converter.OrderLineModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.ProductID,
			&model.ProductName, &model.Price, &model.Quantity,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrLineEntity(models), nil
}

// UpdateStatus меняет статус заказа в рамках транзакции из контекста.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}
