package shopify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storepulse/storepulse-backend/pkg/config"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Level: zerolog.ErrorLevel, Output: io.Discard})
}

func newTestClient(t *testing.T, srv *httptest.Server) (*Client, Credentials) {
	t.Helper()

	client, err := NewClient(config.ShopifyConfig{
		APIVersion:  "2024-10",
		PageSize:    250,
		HTTPTimeout: srv.Client().Timeout,
	}, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.scheme = "http"

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parsing server url: %v", err)
	}
	return client, Credentials{Domain: u.Host, AccessToken: "shpat_test"}
}

func TestFetchProducts(t *testing.T) {
	var gotPath, gotToken, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":101,"title":"Mug","vendor":"Acme","product_type":"Kitchen","status":"active","variants":[{"id":1,"price":"12.50","inventory_quantity":7}]}]}`))
	}))
	defer srv.Close()

	client, creds := newTestClient(t, srv)
	products, err := client.FetchProducts(context.Background(), creds)
	if err != nil {
		t.Fatalf("fetch products: %v", err)
	}

	if gotPath != "/admin/api/2024-10/products.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotToken != "shpat_test" {
		t.Fatalf("unexpected access token header %q", gotToken)
	}
	if gotLimit != "250" {
		t.Fatalf("unexpected limit %q", gotLimit)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != "101" || p.Title != "Mug" || p.Price() != 12.50 || p.Inventory() != 7 {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestFetchOrders(t *testing.T) {
	var gotStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orders":[{"id":9001,"order_number":1001,"email":"carol@example.com","total_price":"579.95","financial_status":"paid","created_at":"2024-01-15T10:30:00Z","customer":{"id":201,"email":"carol@example.com","first_name":"Carol","last_name":"Davis","total_spent":"579.95","orders_count":2}}]}`))
	}))
	defer srv.Close()

	client, creds := newTestClient(t, srv)
	orders, err := client.FetchOrders(context.Background(), creds)
	if err != nil {
		t.Fatalf("fetch orders: %v", err)
	}

	if gotStatus != "any" {
		t.Fatalf("expected status=any, got %q", gotStatus)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	o := orders[0]
	if o.ID != "9001" || o.OrderNumber != "1001" || o.TotalPrice.Float64() != 579.95 {
		t.Fatalf("unexpected order %+v", o)
	}
	if o.Customer == nil || o.Customer.ID != "201" || o.Customer.LastName != "Davis" {
		t.Fatalf("unexpected nested customer %+v", o.Customer)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("expected created_at to parse")
	}
}

func TestFetchProducts_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":"[API] Invalid API key or access token"}`))
	}))
	defer srv.Close()

	client, creds := newTestClient(t, srv)
	_, err := client.FetchProducts(context.Background(), creds)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestFetchProducts_MissingCredentials(t *testing.T) {
	client, err := NewClient(config.ShopifyConfig{APIVersion: "2024-10", PageSize: 250}, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.FetchProducts(context.Background(), Credentials{Domain: "shop.example.com"})
	if err == nil {
		t.Fatal("expected error for missing access token")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
