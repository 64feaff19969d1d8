package product

import (
	"context"
	"sort"
	"sync"
	"time"

	"beauty-storefront/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products map[int]domain.Product
	clock    func() time.Time
}

// NewMemory returns a repository holding products in memory. It backs the
// catalog when no database is configured.
func NewMemory(products []domain.Product) Repository {
	r := &memoryRepo{products: make(map[int]domain.Product, len(products)), clock: time.Now}
	now := r.clock().UTC()
	for _, p := range products {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		r.products[p.ID] = cloneProduct(p)
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = cloneProduct(p)
	return &p, nil
}

func (r *memoryRepo) ListByIDs(_ context.Context, ids []int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[int]struct{}, len(ids))
	var out []domain.Product
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.products[id]; ok {
			out = append(out, cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.products[product.ID]; ok {
		product.CreatedAt = existing.CreatedAt
	} else if product.CreatedAt.IsZero() {
		product.CreatedAt = r.clock().UTC()
	}
	r.products[product.ID] = cloneProduct(product)
	return &product, nil
}

func cloneProduct(p domain.Product) domain.Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}
