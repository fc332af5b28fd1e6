package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"medicart/internal/domain"
	"github.com/gin-gonic/gin"
)

type stubProductSvc struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubProductSvc) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductSvc) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func productRouter(t *testing.T, svc *stubProductSvc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return buildRouter(logDiscard(), nil, Deps{ProductSvc: svc}, []string{"http://localhost:3000"})
}

func TestListProducts(t *testing.T) {
	svc := &stubProductSvc{products: []domain.Product{
		{ID: "p1", Name: "Paracetamol 500mg"},
		{ID: "p2", Name: "Cetirizine 10mg"},
	}}
	router := productRouter(t, svc)

	rec := doJSON(t, router, http.MethodGet, "/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := productRouter(t, &stubProductSvc{err: domain.ErrNotFound})

	rec := doJSON(t, router, http.MethodGet, "/products/ghost", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec.Body.Bytes()); resp.Error != "not_found" {
		t.Fatalf("expected not_found, got %q", resp.Error)
	}
}

func TestHealthz(t *testing.T) {
	router := productRouter(t, &stubProductSvc{})

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
