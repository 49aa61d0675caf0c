package dashboard

import (
	"github.com/storepulse/storepulse-backend/internal/customers"
	"github.com/storepulse/storepulse-backend/internal/orders"
)

// SummaryDTO is the dashboard headline payload for one tenant.
type SummaryDTO struct {
	TotalProducts  int64                   `json:"total_products"`
	TotalCustomers int64                   `json:"total_customers"`
	TotalOrders    int64                   `json:"total_orders"`
	TotalRevenue   float64                 `json:"total_revenue"`
	TopCustomers   []customers.CustomerDTO `json:"top_customers"`
	RecentOrders   []orders.OrderDTO       `json:"recent_orders"`
}

// TimelineBucket is one day's order activity. Days without orders produce no
// bucket at all.
type TimelineBucket struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TimelineDTO is the orders-over-time payload.
type TimelineDTO struct {
	Days    int              `json:"days"`
	Buckets []TimelineBucket `json:"buckets"`
}
