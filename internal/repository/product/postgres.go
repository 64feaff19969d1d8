package product

import (
	"context"
	"errors"

	"beauty-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const selectColumns = `id, name, brand, COALESCE(category_key, ''), COALESCE(description, ''), price, original_price, tag, images, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + selectColumns + ` FROM products ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("product repo: list", zap.Error(err))
		return nil, err
	}
	result, err := collect(rows)
	if err != nil {
		r.logger.Error("product repo: list rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("product repo: list", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	q := `SELECT ` + selectColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("product repo: get", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := `SELECT ` + selectColumns + ` FROM products WHERE id = ANY($1) ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Error("product repo: list by ids", zap.Ints("ids", ids), zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, brand, category_key, description, price, original_price, tag, images)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, COALESCE($9::jsonb, '[]'::jsonb))
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    brand = EXCLUDED.brand,
    category_key = EXCLUDED.category_key,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    tag = EXCLUDED.tag,
    images = EXCLUDED.images
RETURNING created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Name,
		product.Brand,
		product.CategoryKey,
		product.Description,
		product.Price,
		product.OriginalPrice,
		product.Tag,
		product.Images,
	).Scan(&res.CreatedAt)
	if err != nil {
		r.logger.Error("product repo: upsert", zap.Int("id", product.ID), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("product repo: upserted", zap.Int("id", res.ID), zap.String("name", res.Name))
	return &res, nil
}

func collect(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.CategoryKey, &p.Description, &p.Price, &p.OriginalPrice, &p.Tag, &p.Images, &p.CreatedAt)
	return p, err
}
