package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"beauty-storefront/internal/domain"
	"go.uber.org/zap"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	GetByKey(ctx context.Context, key string) (*domain.Category, error)
	Upsert(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CSVImporter reads catalog CSV files with the columns
// id,name,brand,category,price,original_price,tag,description,image and
// upserts one product per row with an id.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryWriter
	logger     *zap.Logger

	knownCategories map[string]struct{}
}

// NewCSVImporter builds an importer. categories may be nil, in which case
// category keys are written as-is without ensuring the category exists.
func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter, logger *zap.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVImporter{
		reader:          csvr,
		products:        products,
		categories:      categories,
		logger:          logger,
		knownCategories: make(map[string]struct{}),
	}
}

// Run parses CSV rows and upserts products. Rows with an empty id and a
// non-empty image add that image to the previous product.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["id"]; !ok {
		return 0, errors.New("read headers: id column required")
	}

	var (
		current  *domain.Product
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		idStr := pick(record, index, "id")
		image := pick(record, index, "image")
		if idStr == "" {
			// Continuation rows (images) belong to the current product.
			if current != nil && image != "" {
				current.Images = append(current.Images, image)
			}
			continue
		}

		if current != nil {
			if err := i.save(ctx, current); err != nil {
				return imported, err
			}
			imported++
		}
		current, err = parseProduct(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	i.logger.Info("catalog import finished", zap.Int("products", imported))
	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, p *domain.Product) error {
	if err := i.ensureCategory(ctx, p.CategoryKey); err != nil {
		return err
	}
	if _, err := i.products.Upsert(ctx, *p); err != nil {
		return fmt.Errorf("upsert product %d: %w", p.ID, err)
	}
	i.logger.Debug("product imported", zap.Int("id", p.ID), zap.Int("images", len(p.Images)))
	return nil
}

// ensureCategory creates a category named after its key when none exists.
func (i *CSVImporter) ensureCategory(ctx context.Context, key string) error {
	if key == "" || i.categories == nil {
		return nil
	}
	if _, ok := i.knownCategories[key]; ok {
		return nil
	}
	_, err := i.categories.GetByKey(ctx, key)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		if _, err := i.categories.Upsert(ctx, domain.Category{Key: key, Name: key, Slug: key}); err != nil {
			return fmt.Errorf("create category %q: %w", key, err)
		}
		i.logger.Info("category created", zap.String("key", key))
	default:
		return fmt.Errorf("lookup category %q: %w", key, err)
	}
	i.knownCategories[key] = struct{}{}
	return nil
}

func parseProduct(record []string, index map[string]int) (*domain.Product, error) {
	id, err := strconv.Atoi(pick(record, index, "id"))
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: id %q", domain.ErrInvalidProduct, pick(record, index, "id"))
	}
	name := pick(record, index, "name")
	if name == "" {
		return nil, fmt.Errorf("%w: product %d: name required", domain.ErrInvalidProduct, id)
	}
	price, err := parsePrice(pick(record, index, "price"))
	if err != nil {
		return nil, fmt.Errorf("%w: product %d: price: %v", domain.ErrInvalidProduct, id, err)
	}
	original, err := parsePrice(pick(record, index, "original_price"))
	if err != nil {
		return nil, fmt.Errorf("%w: product %d: original_price: %v", domain.ErrInvalidProduct, id, err)
	}

	p := &domain.Product{
		ID:            id,
		Name:          name,
		Brand:         pick(record, index, "brand"),
		CategoryKey:   strings.ToLower(pick(record, index, "category")),
		Description:   pick(record, index, "description"),
		Price:         price,
		OriginalPrice: original,
		Tag:           pick(record, index, "tag"),
	}
	if image := pick(record, index, "image"); image != "" {
		p.Images = []string{image}
	}
	return p, nil
}

var priceCleaner = strings.NewReplacer(".", "", ",", "", " ", "", "₫", "", "đ", "")

// parsePrice accepts whole đồng amounts, with or without thousands
// separators and currency sign ("315000", "315.000₫"). Empty means 0.
func parsePrice(s string) (int64, error) {
	s = priceCleaner.Replace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount %d", v)
	}
	return v, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
