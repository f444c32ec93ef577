// Package memory holds process-local adapters.
package memory

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/kernel"
)

type storedCart struct {
	vendorID kernel.UUID
	lines    []cart.Line
}

// CartStore implements ports.CartStore in memory. Carts are per process and are lost on
// restart; an order only exists once the cart is checked out.
type CartStore struct {
	mu    sync.RWMutex
	carts map[kernel.UUID]storedCart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[kernel.UUID]storedCart)}
}

// Get rebuilds the cart from its stored lines, so callers never share state with the store.
func (s *CartStore) Get(_ context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	c, err := cart.NewCart(customerID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	stored, ok := s.carts[customerID]
	s.mu.RUnlock()
	if !ok {
		return c, nil
	}

	for _, line := range stored.lines {
		if _, err = c.AddItem(stored.vendorID, line.ItemID, line.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *CartStore) Save(_ context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.IsEmpty() {
		delete(s.carts, c.CustomerID())
		return nil
	}
	s.carts[c.CustomerID()] = storedCart{vendorID: c.VendorID(), lines: c.Lines()}
	return nil
}

func (s *CartStore) Delete(_ context.Context, customerID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
	return nil
}
