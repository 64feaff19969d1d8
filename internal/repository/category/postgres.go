package category

import (
	"context"
	"errors"

	"beauty-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, key, name, slug, created_at FROM categories ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("category repo: list", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Key, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByKey(ctx context.Context, key string) (*domain.Category, error) {
	const q = `SELECT id, key, name, slug, created_at FROM categories WHERE key = $1`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, key).Scan(&c.ID, &c.Key, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("category repo: get", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, category domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (key, name, slug)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug
RETURNING id, created_at
`
	res := category
	if err := r.pool.QueryRow(ctx, q, category.Key, category.Name, category.Slug).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Error("category repo: upsert", zap.String("key", category.Key), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("category repo: upserted", zap.String("key", res.Key), zap.Int("id", res.ID))
	return &res, nil
}
