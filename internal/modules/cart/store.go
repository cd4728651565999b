package cart

import "sync"

// Store owns every active cart, keyed by POS session id. It is the single
// mutation entry point for cart state: views reach their cart through Get and
// never share engine instances across sessions. Carts are in-memory only and
// are lost on process restart.
type Store struct {
	mu      sync.Mutex
	taxRate float64
	carts   map[string]*Cart
}

// NewStore creates a session store whose carts use the given tax rate.
func NewStore(taxRate float64) *Store {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &Store{taxRate: taxRate, carts: make(map[string]*Cart)}
}

// Get returns the cart for the session, creating an empty one on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = New(s.taxRate)
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards the cart of a session that ended. Dropping an unknown session
// is a no-op.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// TaxRate reports the rate new carts are created with.
func (s *Store) TaxRate() float64 {
	return s.taxRate
}
