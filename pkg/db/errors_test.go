package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation_Postgres(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_idx"}

	if !IsUniqueViolation(err, "") {
		t.Fatal("expected any-constraint match for 23505")
	}
	if !IsUniqueViolation(err, "users_email_idx") {
		t.Fatal("expected match on the violated constraint")
	}
	if IsUniqueViolation(err, "tenants_shopify_domain_idx") {
		t.Fatal("must not match a different constraint")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}, "") {
		t.Fatal("foreign key violation is not a unique violation")
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	emailErr := errors.New("UNIQUE constraint failed: users.email")

	if !IsUniqueViolation(emailErr, "") {
		t.Fatal("expected any-constraint match on SQLite message")
	}
	if !IsUniqueViolation(emailErr, "users_email_idx") {
		t.Fatal("expected email index to match users.email")
	}
	if IsUniqueViolation(emailErr, "tenants_shopify_domain_idx") {
		t.Fatal("email conflict must not match the domain index")
	}

	domainErr := errors.New("UNIQUE constraint failed: tenants.shopify_domain")
	if !IsUniqueViolation(domainErr, "tenants_shopify_domain_idx") {
		t.Fatal("expected domain index to match tenants.shopify_domain")
	}
	if IsUniqueViolation(domainErr, "users_email_idx") {
		t.Fatal("domain conflict must not match the email index")
	}
}

func TestIsUniqueViolation_NilAndUnrelated(t *testing.T) {
	if IsUniqueViolation(nil, "users_email_idx") {
		t.Fatal("nil error is never a violation")
	}
	if IsUniqueViolation(errors.New("connection refused"), "") {
		t.Fatal("unrelated error is never a violation")
	}
}
