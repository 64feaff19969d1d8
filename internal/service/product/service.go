package product

import (
	"context"
	"strings"

	"beauty-storefront/internal/domain"
	productrepo "beauty-storefront/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog. A non-empty categoryKey keeps only products of
// that category.
func (s *Service) List(ctx context.Context, categoryKey string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryKey = strings.TrimSpace(categoryKey)
	if categoryKey == "" {
		return products, nil
	}
	filtered := products[:0]
	for _, p := range products {
		if strings.EqualFold(p.CategoryKey, categoryKey) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	return s.repo.ListByIDs(ctx, ids)
}
