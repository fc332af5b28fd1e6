package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medicart/internal/cartstore"
	"medicart/internal/domain"
)

// ErrInvalidInput marks request-shaped validation failures, mapped to 400
// by the HTTP layer.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	store    *cartstore.Store
	products productRepo
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(store *cartstore.Store, products productRepo) *Service {
	return &Service{store: store, products: products}
}

// Item is a cart line joined with live product data for display. Product
// is nil when the product has been removed from the catalog; the
// snapshotted package keeps the line renderable.
type Item struct {
	domain.CartItem
	Product *domain.Product `json:"product,omitempty"`
}

func (s *Service) Get(ctx context.Context, userID string) ([]Item, error) {
	return s.enrich(ctx, s.store.Get(userID))
}

// Add validates the line and appends it to the user's cart, merging with an
// existing line for the same product and package.
func (s *Service) Add(ctx context.Context, userID, productID string, quantity int, pkg domain.Package) ([]Item, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId required", ErrInvalidInput)
	}
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: productId required", ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(pkg.Name) == "" {
		return nil, fmt.Errorf("%w: selectedPackage required", ErrInvalidInput)
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
		}
		return nil, err
	}

	return s.enrich(ctx, s.store.Add(userID, productID, quantity, pkg))
}

// UpdateQuantity sets an item's quantity as given. The store stores
// whatever quantity it is handed; callers wanting delete-on-zero route to
// Remove before calling this.
func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) ([]Item, error) {
	if _, ok := s.store.UpdateQuantity(userID, itemID, quantity); !ok {
		return nil, fmt.Errorf("cart item %s: %w", itemID, domain.ErrNotFound)
	}
	return s.enrich(ctx, s.store.Get(userID))
}

// Remove deletes an item; unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, userID, itemID string) ([]Item, error) {
	return s.enrich(ctx, s.store.Remove(userID, itemID))
}

// Clear drops the whole cart for the user.
func (s *Service) Clear(userID string) {
	s.store.Clear(userID)
}

func (s *Service) enrich(ctx context.Context, items []domain.CartItem) ([]Item, error) {
	result := make([]Item, 0, len(items))
	for _, it := range items {
		enriched := Item{CartItem: it}
		p, err := s.products.GetByID(ctx, it.ProductID)
		switch {
		case err == nil:
			enriched.Product = p
		case errors.Is(err, domain.ErrNotFound):
			// product delisted after being added; keep the snapshot
		default:
			return nil, err
		}
		result = append(result, enriched)
	}
	return result, nil
}
