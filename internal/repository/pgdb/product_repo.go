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
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, name, brand, category, original_price, discounted_price,
	discount_percent, stock, image_key, created_at, updated_at, is_archived
`

// Upsert идемпотентно создаёт или обновляет товар по уникальному имени.
// Запись обновляется только при фактическом изменении полей.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		WITH upsert AS (
		INSERT INTO products (
			name, brand, category, original_price, discounted_price,
			discount_percent, stock, image_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name)
		DO UPDATE SET
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			original_price = EXCLUDED.original_price,
			discounted_price = EXCLUDED.discounted_price,
			discount_percent = EXCLUDED.discount_percent,
			stock = EXCLUDED.stock,
			image_key = EXCLUDED.image_key,
			updated_at = NOW()
		WHERE
			products.brand IS DISTINCT FROM EXCLUDED.brand OR
			products.category IS DISTINCT FROM EXCLUDED.category OR
			products.original_price IS DISTINCT FROM EXCLUDED.original_price OR
			products.discounted_price IS DISTINCT FROM EXCLUDED.discounted_price OR
			products.discount_percent IS DISTINCT FROM EXCLUDED.discount_percent OR
			products.stock IS DISTINCT FROM EXCLUDED.stock OR
			products.image_key IS DISTINCT FROM EXCLUDED.image_key
		RETURNING ` + productColumns + `
		)
		SELECT ` + productColumns + `
		FROM upsert

		UNION ALL

		SELECT ` + productColumns + `
		FROM products
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.Name, product.Brand, product.Category,
		product.OriginalPrice, product.DiscountedPrice,
		product.DiscountPercent, product.Stock, product.ImageKey,
	).Scan(
		&model.ID, &model.Name, &model.Brand, &model.Category,
		&model.OriginalPrice, &model.DiscountedPrice, &model.DiscountPercent,
		&model.Stock, &model.ImageKey, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Brand, &model.Category,
		&model.OriginalPrice, &model.DiscountedPrice, &model.DiscountPercent,
		&model.Stock, &model.ImageKey, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) AND NOT is_archived`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE NOT is_archived ORDER BY id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Brand, &model.Category,
			&model.OriginalPrice, &model.DiscountedPrice, &model.DiscountPercent,
			&model.Stock, &model.ImageKey, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}
