package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flupretail/flup-backend/internal/modules/orders"
	"github.com/flupretail/flup-backend/internal/modules/settings"
)

type stubOrders struct {
	order *orders.Order
	items []*orders.Item
	err   error
}

func (s *stubOrders) ListOrders(ctx context.Context) ([]*orders.Order, error) { return nil, nil }

func (s *stubOrders) GetOrder(ctx context.Context, orderID int64) (*orders.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func (s *stubOrders) GetOrderItems(ctx context.Context, orderID int64) ([]*orders.Item, error) {
	return s.items, nil
}

type stubSettings struct {
	st  *settings.StoreSettings
	err error
}

func (s *stubSettings) GetSettings(ctx context.Context) (*settings.StoreSettings, error) {
	return s.st, s.err
}

func (s *stubSettings) UpdateSettings(ctx context.Context, id int64, req settings.UpdateSettingsRequest) (*settings.StoreSettings, error) {
	return nil, nil
}

func (s *stubSettings) TaxRate(ctx context.Context) float64 { return 0.16 }

func sampleOrder() *orders.Order {
	return &orders.Order{
		ID:            7,
		CustomerName:  "Maria Lopez",
		Status:        "completed",
		PaymentMethod: "cash",
		TotalAmount:   127.60,
		CreatedAt:     time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
	}
}

func TestBuildReceipt_AssemblesHeaderAndLines(t *testing.T) {
	ord := &stubOrders{
		order: sampleOrder(),
		items: []*orders.Item{
			{ProductName: "Slim Fit Jeans (Black)", Quantity: 2, UnitPrice: 45.00, Subtotal: 90.00},
			{ProductName: "Cotton T-Shirt (White)", Quantity: 1, UnitPrice: 20.00, Subtotal: 20.00},
		},
	}
	cfg := &stubSettings{st: &settings.StoreSettings{
		StoreName: "Flup Centro",
		Address:   "Av. Reforma 100",
		Phone:     "555-0100",
		Currency:  "MXN",
	}}

	rec, err := NewService(ord, cfg).BuildReceipt(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), rec.OrderID)
	assert.Equal(t, "Maria Lopez", rec.CustomerName)
	assert.Equal(t, "cash", rec.PaymentMethod)
	assert.Equal(t, "Flup Centro", rec.Header.StoreName)
	assert.Equal(t, "Av. Reforma 100", rec.Header.Address)
	assert.Equal(t, "MXN", rec.Currency)
	assert.Equal(t, "2026-03-14T12:30:00Z", rec.Date)

	require.Len(t, rec.Items, 2)
	assert.Equal(t, "Slim Fit Jeans (Black)", rec.Items[0].Name)
	assert.Equal(t, 2, rec.Items[0].Quantity)
	assert.InDelta(t, 90.00, rec.Items[0].Total, 1e-9)
}

func TestBuildReceipt_SettingsFailureUsesDefaults(t *testing.T) {
	ord := &stubOrders{order: sampleOrder()}
	cfg := &stubSettings{err: errors.New("connection refused")}

	rec, err := NewService(ord, cfg).BuildReceipt(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Flup POS", rec.Header.StoreName)
	assert.Equal(t, "MXN", rec.Currency)
}

func TestBuildReceipt_UnknownOrder(t *testing.T) {
	ord := &stubOrders{err: errors.New("order not found")}

	_, err := NewService(ord, &stubSettings{}).BuildReceipt(context.Background(), 999)
	assert.Error(t, err)
}

func TestEmailLink_EscapesSubjectAndBody(t *testing.T) {
	link := EmailLink(7, "maria@example.com", "Maria Lopez")

	assert.Contains(t, link, "mailto:maria@example.com?")
	assert.Contains(t, link, "Order+%237")
	assert.NotContains(t, link, " receipt - ")
}
