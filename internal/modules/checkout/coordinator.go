package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flupretail/flup-backend/internal/modules/cart"
)

// DefaultSubmitTimeout bounds the atomic sale round trip. Expiry is treated
// as a failed submission: the cart is preserved and the user may retry.
const DefaultSubmitTimeout = 15 * time.Second

// WalkInName labels anonymous sales on confirmations and receipts.
const WalkInName = "Walk-in"

// Coordinator drives the one multi-step external operation in the system:
// turning the current cart into an atomic sale. It guarantees that a failed
// submission leaves the cart untouched, that a successful one clears it, and
// that at most one submission per session is ever in flight.
type Coordinator struct {
	carts    *cart.Store
	sales    SalesRepository
	roster   CustomerRoster
	notifier Notifier
	log      zerolog.Logger
	timeout  time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	status Status
	// Roster snapshot taken when the checkout was opened. Submission
	// resolves the customer against it without another fetch.
	roster    []Customer
	rosterErr error
	last      *Confirmation
	lastErr   string
}

// StatusView is what the UI polls while a checkout is open.
type StatusView struct {
	Status       Status        `json:"status"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	LastError    string        `json:"last_error,omitempty"`
}

func NewCoordinator(carts *cart.Store, sales SalesRepository, roster CustomerRoster, notifier Notifier, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		carts:    carts,
		sales:    sales,
		roster:   roster,
		notifier: notifier,
		log:      log,
		timeout:  DefaultSubmitTimeout,
		sessions: make(map[string]*session),
	}
}

// SetSubmitTimeout overrides the bound on the atomic sale round trip.
func (c *Coordinator) SetSubmitTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

func (c *Coordinator) sessionLocked(id string) *session {
	s, ok := c.sessions[id]
	if !ok {
		s = &session{status: StatusIdle}
		c.sessions[id] = s
	}
	return s
}

// Begin opens a checkout: the cart must hold at least one non-zero line.
// Beginning while already awaiting payment is a no-op; beginning while a
// submission is in flight is rejected. The customer roster is loaded here so
// that submission can resolve the reference as a pure in-memory match.
func (c *Coordinator) Begin(ctx context.Context, sessionID string) (StatusView, error) {
	roster, rosterErr := c.roster.ListCustomers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessionLocked(sessionID)
	if s.status == StatusSubmitting {
		return c.viewLocked(s), ErrSubmitInFlight
	}

	if len(snapshotLines(c.carts.Get(sessionID))) == 0 {
		return c.viewLocked(s), ErrEmptyCart
	}

	s.status = StatusAwaitingPayment
	s.roster = roster
	s.rosterErr = rosterErr
	s.lastErr = ""
	return c.viewLocked(s), nil
}

// Cancel backs out of a checkout. Only allowed while awaiting payment; once
// submitting, the in-flight request must be allowed to complete.
func (c *Coordinator) Cancel(sessionID string) (StatusView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessionLocked(sessionID)
	if s.status == StatusSubmitting {
		return c.viewLocked(s), ErrSubmitInFlight
	}
	if s.status != StatusAwaitingPayment {
		return c.viewLocked(s), ErrNotAwaitingPayment
	}
	s.status = StatusIdle
	return c.viewLocked(s), nil
}

// Status reports the session's current checkout state.
func (c *Coordinator) Status(sessionID string) StatusView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked(c.sessionLocked(sessionID))
}

// Submit sends the cart as one atomic sale. On success the cart is cleared,
// the confirmation is exposed and the notifier is pinged in the background.
// On any failure the cart is left exactly as it was and the session returns
// to awaiting payment so the user can retry or switch method.
func (c *Coordinator) Submit(ctx context.Context, sessionID string, method PaymentMethod) (*Confirmation, error) {
	if !method.valid() {
		return nil, ErrInvalidPayment
	}

	ca := c.carts.Get(sessionID)

	c.mu.Lock()
	s := c.sessionLocked(sessionID)
	switch s.status {
	case StatusSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StatusAwaitingPayment:
		// proceed
	default:
		c.mu.Unlock()
		return nil, ErrNotAwaitingPayment
	}

	items := snapshotLines(ca)
	if len(items) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}
	customerRef := ca.Customer()
	subtotal := ca.Subtotal()
	tax := ca.Tax()
	total := ca.Total()
	roster := s.roster
	rosterErr := s.rosterErr

	s.status = StatusSubmitting
	c.mu.Unlock()

	conf, err := c.submit(ctx, customerRef, method, items, roster, rosterErr, subtotal, tax, total)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Cart untouched: the user keeps every line and the selected
		// customer for the retry.
		s.status = StatusAwaitingPayment
		s.lastErr = err.Error()
		return nil, err
	}

	ca.Clear()
	s.status = StatusSucceeded
	s.last = conf
	s.lastErr = ""

	go c.notify(*conf)

	return conf, nil
}

func (c *Coordinator) submit(ctx context.Context, ref *cart.CustomerRef, method PaymentMethod, items []SaleItem, roster []Customer, rosterErr error, subtotal, tax, total float64) (*Confirmation, error) {
	customerID, customerName, err := resolveRef(ref, roster, rosterErr)
	if err != nil {
		return nil, err
	}

	req := &SaleRequest{
		Reference:     uuid.New(),
		CustomerID:    customerID,
		PaymentMethod: method,
		Items:         items,
	}

	// Once in flight the sale must run to completion: a client disconnect
	// does not cancel it, only the timeout bounds it.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	orderID, err := c.sales.CompleteSale(callCtx, req)
	if err != nil {
		c.log.Warn().
			Str("reference", req.Reference.String()).
			Err(err).
			Msg("sale submission failed")
		return nil, err
	}

	return &Confirmation{
		OrderID:       orderID,
		CustomerName:  customerName,
		PaymentMethod: method,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		CompletedAt:   time.Now(),
	}, nil
}

// resolveRef turns the cart's customer reference into a store identifier. A
// reference carrying a stable id is used as-is; a bare display name is
// matched against the roster snapshot taken at Begin; no match or no
// reference means a walk-in sale.
func resolveRef(ref *cart.CustomerRef, roster []Customer, rosterErr error) (*int64, string, error) {
	if ref == nil {
		return nil, WalkInName, nil
	}
	if ref.ID != nil {
		name := ref.Name
		if name == "" {
			name = WalkInName
		}
		return ref.ID, name, nil
	}
	if ref.Name == "" {
		return nil, WalkInName, nil
	}

	if rosterErr != nil {
		return nil, "", fmt.Errorf("resolve customer: %w", rosterErr)
	}
	if match := resolveByName(ref.Name, roster); match != nil {
		return &match.ID, match.DisplayName, nil
	}
	// Unmatched references are not an error: the sale proceeds anonymous.
	return nil, ref.Name, nil
}

// resolveByName is a pure, case-insensitive match over an already-loaded
// roster. The first exact name match wins.
func resolveByName(name string, roster []Customer) *Customer {
	for i := range roster {
		if strings.EqualFold(strings.TrimSpace(roster[i].DisplayName), strings.TrimSpace(name)) {
			return &roster[i]
		}
	}
	return nil
}

// snapshotLines copies the sellable lines out of the cart, dropping
// zero-quantity leftovers.
func snapshotLines(c *cart.Cart) []SaleItem {
	var items []SaleItem
	for _, line := range c.Items() {
		if line.Quantity <= 0 {
			continue
		}
		items = append(items, SaleItem{
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return items
}

func (c *Coordinator) notify(conf Confirmation) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.notifier.SaleCompleted(ctx, conf); err != nil {
		c.log.Warn().
			Int64("order_id", conf.OrderID).
			Err(err).
			Msg("sale notification failed")
	}
}

func (c *Coordinator) viewLocked(s *session) StatusView {
	v := StatusView{Status: s.status, LastError: s.lastErr}
	if s.status == StatusSucceeded {
		v.Confirmation = s.last
	}
	return v
}
