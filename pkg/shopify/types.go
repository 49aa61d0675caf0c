package shopify

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// ID is a Shopify numeric identifier carried as a string. Shopify sends ids as
// JSON numbers in REST payloads, but we persist and compare them as strings.
type ID string

func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = ID(n.String())
	return nil
}

func (i ID) String() string { return string(i) }

func (i ID) IsZero() bool { return i == "" }

// Money is a Shopify money amount. The Admin API serializes amounts as decimal
// strings ("579.95"); unparseable or missing values decode to zero.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = Money(v)
	return nil
}

func (m Money) Float64() float64 { return float64(m) }

// Variant is a product variant. Only the price and stock fields are mirrored.
type Variant struct {
	ID                ID    `json:"id"`
	Price             Money `json:"price"`
	InventoryQuantity int   `json:"inventory_quantity"`
}

// Product is the subset of the Admin API product resource we mirror.
type Product struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Status      string    `json:"status"`
	Variants    []Variant `json:"variants"`
}

// Price returns the price of the first variant, zero when there are none.
func (p Product) Price() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].Price.Float64()
}

// Inventory returns the stock quantity of the first variant, zero when there
// are none. Mirrors the same variant the price comes from.
func (p Product) Inventory() int {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].InventoryQuantity
}

// Customer is the subset of the Admin API customer resource we mirror.
type Customer struct {
	ID          ID     `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TotalSpent  Money  `json:"total_spent"`
	OrdersCount int    `json:"orders_count"`
}

// Order is the subset of the Admin API order resource we mirror. Customer is
// nil for guest checkouts.
type Order struct {
	ID              ID         `json:"id"`
	OrderNumber     ID         `json:"order_number"`
	Email           string     `json:"email"`
	TotalPrice      Money      `json:"total_price"`
	FinancialStatus string     `json:"financial_status"`
	Customer        *Customer  `json:"customer"`
	CreatedAt       time.Time  `json:"created_at"`
	ClosedAt        *time.Time `json:"closed_at"`
	CancelledAt     *time.Time `json:"cancelled_at"`
}

// Status derives the lifecycle state the way the Admin API reports it.
func (o Order) Status() string {
	switch {
	case o.CancelledAt != nil:
		return "cancelled"
	case o.ClosedAt != nil:
		return "closed"
	default:
		return "open"
	}
}

type productsResponse struct {
	Products []Product `json:"products"`
}

type ordersResponse struct {
	Orders []Order `json:"orders"`
}
