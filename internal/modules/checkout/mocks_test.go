package checkout

import (
	"context"
	"sync"
)

// mockSales implements SalesRepository for testing.
type mockSales struct {
	mu       sync.Mutex
	requests []*SaleRequest
	orderID  int64
	err      error
	// When set, CompleteSale blocks until the channel is closed, to
	// simulate an in-flight network call.
	block chan struct{}
}

func (m *mockSales) CompleteSale(ctx context.Context, req *SaleRequest) (int64, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	if m.err != nil {
		return 0, m.err
	}
	return m.orderID, nil
}

func (m *mockSales) calls() []*SaleRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*SaleRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// mockRoster implements CustomerRoster for testing.
type mockRoster struct {
	customers []Customer
	err       error
	listed    int
}

func (m *mockRoster) ListCustomers(ctx context.Context) ([]Customer, error) {
	m.listed++
	if m.err != nil {
		return nil, m.err
	}
	return m.customers, nil
}

// mockNotifier implements Notifier and signals each delivery on a channel.
type mockNotifier struct {
	err   error
	calls chan Confirmation
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan Confirmation, 4)}
}

func (m *mockNotifier) SaleCompleted(ctx context.Context, conf Confirmation) error {
	m.calls <- conf
	return m.err
}
