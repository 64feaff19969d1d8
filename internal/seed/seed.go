package seed

import (
	"context"
	"fmt"

	"beauty-storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Categories is the built-in category list.
func Categories() []domain.Category {
	return []domain.Category{
		{ID: 1, Key: "skincare", Name: "Chăm sóc da", Slug: "cham-soc-da"},
		{ID: 2, Key: "makeup", Name: "Trang điểm", Slug: "trang-diem"},
		{ID: 3, Key: "haircare", Name: "Chăm sóc tóc", Slug: "cham-soc-toc"},
		{ID: 4, Key: "fragrance", Name: "Nước hoa", Slug: "nuoc-hoa"},
	}
}

// Products is the built-in catalog. Ids 1..10 match the default voucher
// eligibility bound.
func Products() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Sữa rửa mặt dịu nhẹ Cetaphil 500ml", Brand: "Cetaphil", CategoryKey: "skincare", Price: 315000, OriginalPrice: 425000, Tag: "Bán chạy", Images: []string{"/images/products/1.jpg"}},
		{ID: 2, Name: "Serum Vitamin C Klairs 35ml", Brand: "Klairs", CategoryKey: "skincare", Price: 289000, OriginalPrice: 380000, Tag: "Mới", Images: []string{"/images/products/2.jpg"}},
		{ID: 3, Name: "Kem chống nắng La Roche-Posay Anthelios 50ml", Brand: "La Roche-Posay", CategoryKey: "skincare", Price: 465000, OriginalPrice: 560000, Images: []string{"/images/products/3.jpg"}},
		{ID: 4, Name: "Son kem lì Black Rouge Air Fit Velvet Tint", Brand: "Black Rouge", CategoryKey: "makeup", Price: 159000, OriginalPrice: 220000, Tag: "Hot", Images: []string{"/images/products/4.jpg"}},
		{ID: 5, Name: "Phấn phủ Innisfree No Sebum Mineral Powder", Brand: "Innisfree", CategoryKey: "makeup", Price: 129000, OriginalPrice: 170000, Images: []string{"/images/products/5.jpg"}},
		{ID: 6, Name: "Mascara Maybelline Lash Sensational", Brand: "Maybelline", CategoryKey: "makeup", Price: 199000, OriginalPrice: 249000, Images: []string{"/images/products/6.jpg"}},
		{ID: 7, Name: "Dầu gội Tsubaki Premium Moist 490ml", Brand: "Tsubaki", CategoryKey: "haircare", Price: 185000, OriginalPrice: 230000, Images: []string{"/images/products/7.jpg"}},
		{ID: 8, Name: "Mặt nạ giấy Mediheal Tea Tree (hộp 10 miếng)", Brand: "Mediheal", CategoryKey: "skincare", Price: 250000, OriginalPrice: 320000, Tag: "Combo", Images: []string{"/images/products/8.jpg"}},
		{ID: 9, Name: "Nước hoa Chanel Coco Mademoiselle EDP 50ml", Brand: "Chanel", CategoryKey: "fragrance", Price: 3250000, OriginalPrice: 3600000, Images: []string{"/images/products/9.jpg"}},
		{ID: 10, Name: "Tẩy trang Bioderma Sensibio H2O 500ml", Brand: "Bioderma", CategoryKey: "skincare", Price: 399000, OriginalPrice: 495000, Tag: "Bán chạy", Images: []string{"/images/products/10.jpg"}},
	}
}

// Apply loads the built-in catalog into the database. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, c := range Categories() {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Key, err)
		}
	}
	for _, p := range Products() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c domain.Category) error {
	const q = `
INSERT INTO categories (key, name, slug)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug
`
	_, err := pool.Exec(ctx, q, c.Key, c.Name, c.Slug)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, brand, category_key, description, price, original_price, tag, images)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, COALESCE($9::jsonb, '[]'::jsonb))
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    brand = EXCLUDED.brand,
    category_key = EXCLUDED.category_key,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    tag = EXCLUDED.tag,
    images = EXCLUDED.images
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Brand, p.CategoryKey, p.Description, p.Price, p.OriginalPrice, p.Tag, p.Images)
	return err
}
