package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"medicart/internal/domain"
)

type stubWriter struct {
	written []domain.Product
	err     error
}

func (s *stubWriter) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.written = append(s.written, product)
	return &product, nil
}

const catalog = `[
	{
		"name": "Paracetamol 500mg",
		"description": "Pain and fever relief",
		"images": ["paracetamol.jpg"],
		"variants": [
			{"name": "10-pack", "price": "500"},
			{"name": "20-pack", "price": "900"}
		]
	},
	{
		"name": "Cetirizine 10mg",
		"variants": [{"name": "strip", "price": "60"}],
		"inStock": false
	}
]`

func TestRunImportsCatalog(t *testing.T) {
	writer := &stubWriter{}
	imp := NewJSONImporter(strings.NewReader(catalog), writer)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 || len(writer.written) != 2 {
		t.Fatalf("expected 2 products, got %d", count)
	}

	first := writer.written[0]
	if first.Name != "Paracetamol 500mg" || len(first.Packages) != 2 {
		t.Fatalf("unexpected product: %+v", first)
	}
	if first.Packages[1].Price.String() != "900" {
		t.Fatalf("unexpected variant price: %s", first.Packages[1].Price)
	}
	if !first.InStock {
		t.Fatalf("inStock should default to true")
	}
	if writer.written[1].InStock {
		t.Fatalf("explicit inStock=false was dropped")
	}
}

func TestRunRejectsBadJSON(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader(`{"not":"an array"}`), &stubWriter{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRunAbortsOnMalformedEntry(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `[{"name":" ","variants":[{"name":"strip","price":"60"}]}]`},
		{"no variants", `[{"name":"Cetirizine 10mg","variants":[]}]`},
		{"bad price", `[{"name":"Cetirizine 10mg","variants":[{"name":"strip","price":"sixty"}]}]`},
		{"negative price", `[{"name":"Cetirizine 10mg","variants":[{"name":"strip","price":"-60"}]}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writer := &stubWriter{}
			imp := NewJSONImporter(strings.NewReader(tc.body), writer)
			if _, err := imp.Run(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
			if len(writer.written) != 0 {
				t.Fatalf("nothing should be written for a malformed entry")
			}
		})
	}
}

func TestRunStopsOnWriteFailure(t *testing.T) {
	writer := &stubWriter{err: errors.New("db down")}
	imp := NewJSONImporter(strings.NewReader(catalog), writer)

	count, err := imp.Run(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if count != 0 {
		t.Fatalf("expected 0 imported, got %d", count)
	}
}
