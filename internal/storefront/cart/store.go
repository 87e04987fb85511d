// Package cart holds a visitor's cart line items and the checkout flow that
// consumes them.
package cart

import (
	"sync"

	"github.com/dailyharvest/storefront/internal/storefront/catalog"
	"github.com/dailyharvest/storefront/internal/storefront/money"
)

// Item is one cart line. Quantity is always at least 1.
type Item struct {
	ID       string
	Name     string
	Price    float64
	Image    string
	Quantity int
}

// UnitPrice implements money.Line.
func (i Item) UnitPrice() float64 { return i.Price }

// Units implements money.Line.
func (i Item) Units() int { return i.Quantity }

// Subtotal is price times quantity.
func (i Item) Subtotal() float64 { return money.Round(i.Price * float64(i.Quantity)) }

// Store is an ordered set of cart lines keyed by product identity.
type Store struct {
	mu    sync.Mutex
	items []Item
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add increments the line for product, or appends a new line with
// quantity 1 copying the product's display fields.
func (s *Store) Add(product catalog.Product) {
	key := product.Key()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == key {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{
		ID:       key,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: 1,
	})
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Len is the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Count is the number of units across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

// Total is the cart price total rounded to cents.
func (s *Store) Total() float64 {
	return money.Round(money.CalculateTotal(s.Items()))
}
