package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	"yelocar/internal/domain/repository"
	"yelocar/internal/errors"

	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 unique_violation, when the dialector does not translate errors
	return strings.Contains(err.Error(), "23505")
}

// isConnectionError reports whether err means the database could not be reached.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "failed to connect") ||
		strings.Contains(msg, "08006") // connection_failure
}

// wrapStoreError maps reachability failures to repository.ErrStoreUnavailable.
func wrapStoreError(err error, msg string) error {
	if isConnectionError(err) {
		return errors.Wrap(errors.Join(repository.ErrStoreUnavailable, err), msg)
	}

	return errors.Wrap(err, msg)
}
