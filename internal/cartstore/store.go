// Package cartstore keeps per-user shopping carts in process memory.
// Carts do not survive a restart; the persisted state of the system starts
// at order placement.
package cartstore

import (
	"sync"
	"time"

	"medicart/internal/domain"
	"github.com/google/uuid"
)

// Store maps user ids to their carts. Each user's cart carries its own
// mutex so mutations for one user are applied strictly in arrival order
// without serializing unrelated users.
type Store struct {
	mu    sync.Mutex
	carts map[string]*userCart
}

type userCart struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func New() *Store {
	return &Store{carts: make(map[string]*userCart)}
}

func (s *Store) cart(userID string) *userCart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = &userCart{}
		s.carts[userID] = c
	}
	return c
}

// Get returns a copy of the user's cart in insertion order. An unknown
// user gets an empty slice.
func (s *Store) Get(userID string) []domain.CartItem {
	c := s.cart(userID)
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyItems(c.items)
}

// Add appends a new line item, or increments the quantity of an existing
// item with the same product and package name, and returns the updated
// cart. Item ids are generated here.
func (s *Store) Add(userID, productID string, quantity int, pkg domain.Package) []domain.CartItem {
	c := s.cart(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].SelectedPackage.Name == pkg.Name {
			c.items[i].Quantity += quantity
			return copyItems(c.items)
		}
	}

	c.items = append(c.items, domain.CartItem{
		ID:              uuid.NewString(),
		ProductID:       productID,
		Quantity:        quantity,
		SelectedPackage: pkg,
		AddedAt:         time.Now().UTC(),
	})
	return copyItems(c.items)
}

// UpdateQuantity sets the quantity of an item as given, including
// non-positive values. Routing quantity <= 0 to Remove is the caller's
// decision, not the store's. The second return is false when the item does
// not exist for this user.
func (s *Store) UpdateQuantity(userID, itemID string, quantity int) (domain.CartItem, bool) {
	c := s.cart(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return c.items[i], true
		}
	}
	return domain.CartItem{}, false
}

// Remove deletes an item by id and returns the updated cart. Removing an
// unknown id is a no-op.
func (s *Store) Remove(userID, itemID string) []domain.CartItem {
	c := s.cart(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return copyItems(c.items)
}

// Clear drops all items for the user. Clearing an empty or unknown cart is
// a no-op.
func (s *Store) Clear(userID string) {
	c := s.cart(userID)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}
