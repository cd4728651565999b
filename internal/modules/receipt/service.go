package receipt

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/flupretail/flup-backend/internal/modules/orders"
	"github.com/flupretail/flup-backend/internal/modules/settings"
)

// Service assembles receipts from completed orders.
type Service interface {
	BuildReceipt(ctx context.Context, orderID int64) (*Receipt, error)
}

type service struct {
	orders   orders.Service
	settings settings.Service
}

func NewService(orderSvc orders.Service, settingsSvc settings.Service) Service {
	return &service{orders: orderSvc, settings: settingsSvc}
}

func (s *service) BuildReceipt(ctx context.Context, orderID int64) (*Receipt, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rec := &Receipt{
		OrderID:       order.ID,
		Date:          order.CreatedAt.Format(time.RFC3339),
		CustomerName:  order.CustomerName,
		PaymentMethod: order.PaymentMethod,
		Total:         order.TotalAmount,
		Currency:      "MXN",
		Header:        Header{StoreName: "Flup POS"},
	}

	// Settings are cosmetic here; a missing row never blocks the receipt.
	if st, err := s.settings.GetSettings(ctx); err == nil && st != nil {
		rec.Header = Header{
			StoreName: st.StoreName,
			Address:   st.Address,
			Phone:     st.Phone,
			Email:     st.Email,
			LogoURL:   st.LogoURL,
		}
		if st.Currency != "" {
			rec.Currency = st.Currency
		}
	}

	for _, it := range lines {
		rec.Items = append(rec.Items, Item{
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Subtotal,
		})
	}
	return rec, nil
}

// EmailLink builds a mailto URL prefilled with the receipt subject and body,
// for the "email receipt" button on the confirmation screen.
func EmailLink(orderID int64, customerEmail, customerName string) string {
	subject := fmt.Sprintf("Purchase receipt - Order #%d", orderID)
	body := fmt.Sprintf("Hi %s,\n\nThank you for your purchase. Attached is the receipt for order #%d.\n\nRegards,\nThe team.",
		customerName, orderID)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		customerEmail, url.QueryEscape(subject), url.QueryEscape(body))
}
