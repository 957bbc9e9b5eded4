package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres short_code duplicate", &pq.Error{Code: "23505", Constraint: "urls_short_code_key"}, true},
		{"postgres wrapped duplicate", fmt.Errorf("exec: %w", &pq.Error{Code: "23505", Constraint: "urls_short_code_key"}), true},
		{"postgres duplicate without constraint", fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}), true},
		{"postgres primary key duplicate", &pq.Error{Code: "23505", Constraint: "urls_pkey"}, false},
		{"postgres not null violation", &pq.Error{Code: "23502", Constraint: "urls_long_url_not_null"}, false},
		{"postgres connection failure", &pq.Error{Code: "08006"}, false},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite wrapped unique", fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}), true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v; want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("resolve: %w", &StorageError{Op: "lookup mapping", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("Expected StorageError to unwrap to its cause")
	}
	var storageErr *StorageError
	if !errors.As(err, &storageErr) || storageErr.Op != "lookup mapping" {
		t.Errorf("errors.As failed or wrong Op: %v", err)
	}
	if storageErr.Error() != "lookup mapping: timeout" {
		t.Errorf("Error() = %s", storageErr.Error())
	}
}
