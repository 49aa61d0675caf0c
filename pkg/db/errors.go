package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// sqliteConstraintText maps an index name to the "table.column" text SQLite
// puts in its violation message, so tests discriminate conflicts the same way
// Postgres does by constraint name.
var sqliteConstraintText = map[string]string{
	"tenants_shopify_domain_idx":            "tenants.shopify_domain",
	"users_email_idx":                       "users.email",
	"products_tenant_shopify_product_idx":   "products.tenant_id, products.shopify_product_id",
	"customers_tenant_shopify_customer_idx": "customers.tenant_id, customers.shopify_customer_id",
	"orders_tenant_shopify_order_idx":       "orders.tenant_id, orders.shopify_order_id",
}

// IsUniqueViolation reports whether the provided error is a unique constraint
// violation. When constraintName is given the match is narrowed to that
// constraint. SQLite (used in tests) is detected by message text.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		if constraintName != "" {
			return pgErr.ConstraintName == constraintName
		}
		return true
	}

	msg := err.Error()
	if constraintName != "" {
		if strings.Contains(msg, constraintName) {
			return true
		}
		text, ok := sqliteConstraintText[constraintName]
		return ok && strings.Contains(msg, text)
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
