package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ===============================
// Business error codes
// ===============================

const (
	CodeInvalidParameter  = "invalid_parameter"
	CodeMissingField      = "missing_field"
	CodeSlotConflict      = "slot_conflict"
	CodeAvailabilityCheck = "availability_check_failed"
	CodeIllegalTransition = "illegal_transition"
	CodeInvalidStatus     = "invalid_status"
	CodeNotFound          = "not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation reports whether err is a Postgres unique or exclusion
// constraint rejection (the storage-level slot guard firing).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}

func asBusiness(err error, be *BusinessError) bool {
	var b BusinessError
	if errors.As(err, &b) {
		*be = b
		return true
	}
	return false
}
