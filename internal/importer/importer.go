package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"medicart/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads a catalog export and inserts/updates products. The
// format mirrors the storefront's product payload: name, description,
// images, and variants with decimal-string prices.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

type catalogEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Variants    []variantEntry `json:"variants"`
	InStock     *bool          `json:"inStock"`
}

type variantEntry struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Run parses the catalog and upserts every entry, returning the number of
// products written. A malformed entry aborts the run so a partial import
// is never mistaken for a complete one.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var entries []catalogEntry
	dec := json.NewDecoder(i.reader)
	if err := dec.Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	imported := 0
	for idx, entry := range entries {
		product, err := toProduct(entry)
		if err != nil {
			return imported, fmt.Errorf("entry %d (%s): %w", idx, entry.Name, err)
		}
		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", entry.Name, err)
		}
		imported++
	}
	return imported, nil
}

func toProduct(entry catalogEntry) (*domain.Product, error) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return nil, fmt.Errorf("name required")
	}
	if len(entry.Variants) == 0 {
		return nil, fmt.Errorf("at least one variant required")
	}

	packages := make([]domain.Package, 0, len(entry.Variants))
	for _, v := range entry.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return nil, fmt.Errorf("variant name required")
		}
		price, err := decimal.NewFromString(v.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("variant %s: bad price %q", v.Name, v.Price)
		}
		packages = append(packages, domain.Package{Name: v.Name, Price: price})
	}

	inStock := true
	if entry.InStock != nil {
		inStock = *entry.InStock
	}

	return &domain.Product{
		Name:        name,
		Description: strings.TrimSpace(entry.Description),
		Images:      entry.Images,
		Packages:    packages,
		InStock:     inStock,
	}, nil
}
