package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrUniqueViolation means the short code is already taken. Callers are
// expected to retry with a different code.
var ErrUniqueViolation = errors.New("short code already exists")

const (
	// pqUniqueViolation is the PostgreSQL SQLSTATE for unique_violation
	pqUniqueViolation = pq.ErrorCode("23505")
	// shortCodeConstraint is named in the postgres migration
	shortCodeConstraint = "urls_short_code_key"
)

// StorageError wraps any store failure other than a uniqueness violation
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// isUniqueViolation recognizes a duplicate short code from either supported
// driver. On PostgreSQL a violation of any other unique constraint is not a
// collision; an error without a constraint name is taken as one.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code != pqUniqueViolation {
			return false
		}
		return pqErr.Constraint == "" || pqErr.Constraint == shortCodeConstraint
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
