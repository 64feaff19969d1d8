package voucher

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"beauty-storefront/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Vouchers []domain.VoucherTemplate `yaml:"vouchers"`
}

// DefaultCatalog returns the embedded template catalog.
func DefaultCatalog() []domain.VoucherTemplate {
	templates, err := ParseCatalog(bytes.NewReader(defaultCatalogYAML))
	if err != nil {
		panic(fmt.Sprintf("voucher: embedded catalog: %v", err))
	}
	return templates
}

// LoadCatalog reads a YAML template catalog from path.
func LoadCatalog(path string) ([]domain.VoucherTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

// ParseCatalog decodes a YAML catalog. Entries without a code are rejected.
func ParseCatalog(r io.Reader) ([]domain.VoucherTemplate, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Vouchers) == 0 {
		return nil, ErrEmptyCatalog
	}
	out := make([]domain.VoucherTemplate, 0, len(file.Vouchers))
	for i, t := range file.Vouchers {
		t.Code = strings.TrimSpace(t.Code)
		t.DiscountLabel = strings.TrimSpace(t.DiscountLabel)
		t.Description = strings.TrimSpace(t.Description)
		if t.Code == "" {
			return nil, fmt.Errorf("%w: entry %d: code required", ErrInvalidCatalog, i)
		}
		out = append(out, t)
	}
	return out, nil
}
