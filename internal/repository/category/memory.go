package category

import (
	"context"
	"sort"
	"sync"
	"time"

	"beauty-storefront/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	byKey  map[string]domain.Category
	nextID int
}

// NewMemory returns an in-memory repository. Categories without an id are
// numbered after the highest id seen.
func NewMemory(categories []domain.Category) Repository {
	r := &memoryRepo{byKey: make(map[string]domain.Category, len(categories))}
	for _, c := range categories {
		r.put(c)
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Category, 0, len(r.byKey))
	for _, c := range r.byKey {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) GetByKey(_ context.Context, key string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byKey[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) Upsert(_ context.Context, category domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.put(category)
	return &c, nil
}

func (r *memoryRepo) put(c domain.Category) domain.Category {
	if existing, ok := r.byKey[c.Key]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	}
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	} else if c.ID > r.nextID {
		r.nextID = c.ID
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.byKey[c.Key] = c
	return c
}
