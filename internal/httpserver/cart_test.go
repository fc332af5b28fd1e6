package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicart/internal/cartstore"
	"medicart/internal/domain"
	cartsvc "medicart/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type stubProducts struct {
	products map[string]*domain.Product
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func cartRouter(t *testing.T) (*gin.Engine, *cartstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := cartstore.New()
	svc := cartsvc.New(store, &stubProducts{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Paracetamol 500mg", InStock: true},
	}})
	router := buildRouter(logDiscard(), nil, Deps{CartSvc: svc}, []string{"http://localhost:3000"})
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) []cartsvc.Item {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Cart    []cartsvc.Item `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	if !resp.Success {
		t.Fatalf("expected success=true: %s", rec.Body.String())
	}
	return resp.Cart
}

func TestGetCartEmptyUser(t *testing.T) {
	router, _ := cartRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/cart?userId=u1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []cartsvc.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestGetCartRequiresUserID(t *testing.T) {
	router, _ := cartRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/cart", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddCartItem(t *testing.T) {
	router, _ := cartRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"p1","quantity":2,"selectedPackage":{"name":"10-pack","price":"500"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart := decodeCart(t, rec)
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
	if cart[0].Product == nil || cart[0].Product.Name != "Paracetamol 500mg" {
		t.Fatalf("expected enriched product: %+v", cart[0])
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	router, _ := cartRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"ghost","quantity":1,"selectedPackage":{"name":"10-pack","price":"500"}}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItemBadQuantity(t *testing.T) {
	router, _ := cartRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"p1","quantity":0,"selectedPackage":{"name":"10-pack","price":"500"}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPatchCartItemQuantity(t *testing.T) {
	router, _ := cartRouter(t)
	added := decodeCart(t, doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"p1","quantity":2,"selectedPackage":{"name":"10-pack","price":"500"}}`))

	rec := doJSON(t, router, http.MethodPatch, "/cart/"+added[0].ID+"?userId=u1", `{"quantity":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart := decodeCart(t, rec)
	if cart[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart[0].Quantity)
	}
}

func TestPatchCartItemZeroQuantityRemoves(t *testing.T) {
	router, _ := cartRouter(t)
	added := decodeCart(t, doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"p1","quantity":2,"selectedPackage":{"name":"10-pack","price":"500"}}`))

	rec := doJSON(t, router, http.MethodPatch, "/cart/"+added[0].ID+"?userId=u1", `{"quantity":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart := decodeCart(t, rec)
	if len(cart) != 0 {
		t.Fatalf("expected item removed on zero quantity, got %+v", cart)
	}
}

func TestPatchCartItemNotFound(t *testing.T) {
	router, _ := cartRouter(t)
	rec := doJSON(t, router, http.MethodPatch, "/cart/unknown?userId=u1", `{"quantity":3}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteCartItemIdempotent(t *testing.T) {
	router, _ := cartRouter(t)
	added := decodeCart(t, doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"p1","quantity":1,"selectedPackage":{"name":"10-pack","price":"500"}}`))

	first := doJSON(t, router, http.MethodDelete, "/cart/"+added[0].ID+"?userId=u1", "")
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	second := doJSON(t, router, http.MethodDelete, "/cart/"+added[0].ID+"?userId=u1", "")
	if second.Code != http.StatusOK {
		t.Fatalf("repeat delete should still be 200, got %d", second.Code)
	}
	if cart := decodeCart(t, second); len(cart) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestClearCart(t *testing.T) {
	router, store := cartRouter(t)
	doJSON(t, router, http.MethodPost, "/cart",
		`{"userId":"u1","productId":"p1","quantity":1,"selectedPackage":{"name":"10-pack","price":"500"}}`)

	rec := doJSON(t, router, http.MethodDelete, "/cart?userId=u1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if items := store.Get("u1"); len(items) != 0 {
		t.Fatalf("expected store cleared, got %+v", items)
	}
}
