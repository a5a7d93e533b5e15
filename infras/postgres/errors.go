package postgres

import (
	"errors"

	"github.com/lib/pq"

	"airtech/shared/constant"
)

// IsUniqueViolation reports whether err wraps a Postgres unique-constraint
// violation. Uniqueness invariants (flight numbers, one booking per flight and
// passenger) are enforced by the database, so callers translate this condition
// into their own domain errors.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// IsForeignKeyViolation reports whether err wraps a Postgres foreign-key
// violation.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeFkViolation
	}

	return false
}
