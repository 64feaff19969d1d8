package product

import (
	"context"
	"errors"
	"testing"

	"beauty-storefront/internal/domain"
)

func TestMemory_ListAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory([]domain.Product{
		{ID: 2, Name: "Serum", Price: 289000, Images: []string{"a.jpg"}},
		{ID: 1, Name: "Cleanser", Price: 315000},
	})

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected list %+v", list)
	}
	if list[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Images[0] = "changed"
	again, _ := repo.GetByID(ctx, 2)
	if again.Images[0] != "a.jpg" {
		t.Fatalf("returned product shares memory with the repository")
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemory_ListByIDs(t *testing.T) {
	repo := NewMemory([]domain.Product{{ID: 1}, {ID: 2}, {ID: 3}})
	got, err := repo.ListByIDs(context.Background(), []int{3, 1, 3, 42})
	if err != nil {
		t.Fatalf("list by ids: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected products %+v", got)
	}
}

func TestMemory_UpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory([]domain.Product{{ID: 1, Name: "Old"}})
	before, _ := repo.GetByID(ctx, 1)

	if _, err := repo.Upsert(ctx, domain.Product{ID: 1, Name: "New"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	after, _ := repo.GetByID(ctx, 1)
	if after.Name != "New" || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("unexpected product after upsert %+v", after)
	}
}
