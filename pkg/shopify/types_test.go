package shopify

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `123456789`, "123456789"},
		{"large number", `632910392123456789`, "632910392123456789"},
		{"string", `"abc123"`, "abc123"},
		{"null", `null`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got ID
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneyUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"decimal string", `"579.95"`, 579.95},
		{"number", `19.99`, 19.99},
		{"empty string", `""`, 0},
		{"garbage", `"not-a-price"`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Money
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if got.Float64() != tc.want {
				t.Fatalf("got %v, want %v", got.Float64(), tc.want)
			}
		})
	}
}

func TestProductDerivedFields(t *testing.T) {
	p := Product{
		Variants: []Variant{
			{Price: 19.99, InventoryQuantity: 4},
			{Price: 24.99, InventoryQuantity: 6},
		},
	}

	if got := p.Price(); got != 19.99 {
		t.Fatalf("price = %v, want first variant price", got)
	}
	if got := p.Inventory(); got != 4 {
		t.Fatalf("inventory = %d, want first variant quantity", got)
	}

	empty := Product{}
	if empty.Price() != 0 || empty.Inventory() != 0 {
		t.Fatal("product without variants should report zero price and inventory")
	}
}
