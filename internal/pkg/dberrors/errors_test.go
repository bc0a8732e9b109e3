package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "students_pkey"}

	if !IsUniqueViolation(unique) {
		t.Error("expected 23505 to be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", unique)) {
		t.Error("expected wrapped 23505 to be a unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("23503 is not a unique violation")
	}
	if IsUniqueViolation(errors.New("no rows")) {
		t.Error("plain error is not a unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "admins_email_address_key"}

	if !IsDuplicateConstraintError(err, "admins_email_address_key") {
		t.Error("expected match on the named constraint")
	}
	if IsDuplicateConstraintError(err, "students_pkey") {
		t.Error("must not match a different constraint")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("expected 23503 to be a foreign key violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 is not a foreign key violation")
	}
}
