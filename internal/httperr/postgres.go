package httperr

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlstateExclusionViolation   = "23P01"
	sqlstateSerializationFailure = "40001"
)

// IsExclusionConflict reports whether the store rejected a write because a
// concurrent transaction claimed the same range first.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case sqlstateExclusionViolation, sqlstateSerializationFailure:
		return true
	}
	return false
}

// IsStoreUnavailable reports connection-level failures, as opposed to
// errors returned by a reachable server.
func IsStoreUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
