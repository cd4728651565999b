package checkout

import "context"

// SalesRepository submits one sale to the store's atomic operation. The store
// must apply the whole request or none of it: verify stock, decrement it and
// write the order plus its lines in a single transaction, returning the new
// order id.
type SalesRepository interface {
	CompleteSale(ctx context.Context, req *SaleRequest) (int64, error)
}

// CustomerRoster supplies the known customers for reference resolution.
type CustomerRoster interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
}

// Notifier receives a best-effort heads-up after a completed sale. Errors are
// logged by the coordinator and never affect the sale outcome.
type Notifier interface {
	SaleCompleted(ctx context.Context, conf Confirmation) error
}
