package product

import (
	"context"

	"beauty-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	// ListByIDs returns the products among ids that exist, ordered by id.
	ListByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
