package voucher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) == 0 {
		t.Fatalf("embedded catalog is empty")
	}
	for _, tpl := range catalog {
		if tpl.Code == "" || tpl.DiscountLabel == "" {
			t.Fatalf("incomplete template %+v", tpl)
		}
	}
}

func TestParseCatalog(t *testing.T) {
	data := `
vouchers:
  - code: " BEA50 "
    discount: 50K
    description: fifty off
  - code: GLOW15
    discount: 15%
`
	catalog, err := ParseCatalog(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(catalog) != 2 || catalog[0].Code != "BEA50" || catalog[1].DiscountLabel != "15%" {
		t.Fatalf("unexpected catalog %+v", catalog)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	if _, err := ParseCatalog(strings.NewReader("")); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected empty catalog for empty input, got %v", err)
	}
	if _, err := ParseCatalog(strings.NewReader("vouchers: []\n")); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected empty catalog, got %v", err)
	}
	_, err := ParseCatalog(strings.NewReader("vouchers:\n  - discount: 10K\n"))
	if !errors.Is(err, ErrInvalidCatalog) || !strings.Contains(err.Error(), "code required") {
		t.Fatalf("expected missing code error, got %v", err)
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vouchers.yaml")
	if err := os.WriteFile(path, []byte("vouchers:\n  - code: SUN25\n    discount: 25K\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(catalog) != 1 || catalog[0].Code != "SUN25" {
		t.Fatalf("unexpected catalog %+v", catalog)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
