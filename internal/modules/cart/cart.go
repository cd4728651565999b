package cart

import "sync"

// Cart holds what is currently being purchased in one POS session. Lines keep
// insertion order for display. Totals are derived on every read, never cached.
//
// The engine is owned by a single logical session, but HTTP handlers run
// concurrently, so every operation takes the lock.
type Cart struct {
	mu       sync.Mutex
	taxRate  float64
	items    []Line
	customer *CustomerRef
}

// New creates an empty cart. A non-positive taxRate falls back to
// DefaultTaxRate.
func New(taxRate float64) *Cart {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &Cart{taxRate: taxRate}
}

// AddItem puts one unit of the product in the cart. If a line for the same
// variant already exists its quantity is incremented; the price snapshot taken
// on first add is kept. No stock check happens here: the cart is optimistic
// and over-commitment is caught atomically at checkout.
func (c *Cart) AddItem(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].VariantID == p.VariantID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Line{
		VariantID: p.VariantID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for the variant entirely, regardless of
// quantity. Removing a variant that is not in the cart is a no-op.
func (c *Cart) RemoveItem(variantID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].VariantID == variantID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. Values below zero are
// clamped to zero; a zero-quantity line stays in the cart and contributes
// nothing to the totals (checkout drops it from the sale snapshot). Unknown
// variants are a no-op.
func (c *Cart) UpdateQuantity(variantID int64, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].VariantID == variantID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// SetCustomer replaces the selected customer reference. Passing nil marks the
// sale as walk-in. Line items are not affected.
func (c *Cart) SetCustomer(ref *CustomerRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = ref
}

// Clear empties the cart and resets the customer reference. Called after a
// successful checkout or an explicit cancellation.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.customer = nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.items))
	copy(out, c.items)
	return out
}

// Customer returns a copy of the selected customer reference, or nil.
func (c *Cart) Customer() *CustomerRef {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.customer == nil {
		return nil
	}
	ref := *c.customer
	return &ref
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

// Tax is subtotal times the configured tax rate.
func (c *Cart) Tax() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked() * c.taxRate
}

// Total is subtotal plus tax.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := c.subtotalLocked()
	return sub + sub*c.taxRate
}

// TaxRate reports the rate this cart was configured with.
func (c *Cart) TaxRate() float64 {
	return c.taxRate
}

// State captures lines, customer and totals in one consistent read.
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, len(c.items))
	copy(items, c.items)

	var ref *CustomerRef
	if c.customer != nil {
		cp := *c.customer
		ref = &cp
	}

	sub := c.subtotalLocked()
	return State{
		Items:    items,
		Customer: ref,
		Subtotal: sub,
		Tax:      sub * c.taxRate,
		Total:    sub + sub*c.taxRate,
	}
}

func (c *Cart) subtotalLocked() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}
