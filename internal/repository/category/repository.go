package category

import (
	"context"

	"beauty-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByKey(ctx context.Context, key string) (*domain.Category, error)
	Upsert(ctx context.Context, category domain.Category) (*domain.Category, error)
}
