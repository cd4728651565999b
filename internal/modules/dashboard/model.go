package dashboard

import "time"

// DailySales is one row of the view_daily_sales view.
type DailySales struct {
	Day          time.Time `json:"day"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalOrders  int       `json:"total_orders"`
}

// CategoryShare is the product count per category for the distribution chart.
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Stats are the aggregate numbers on the dashboard cards.
type Stats struct {
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
	LowStockCount int     `json:"low_stock_count"`
}
