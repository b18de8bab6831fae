package dbconn

import (
	"database/sql"
	"errors"
	"net"
	"syscall"
)

// IsRetryableError reports whether a dial or ping failure is worth
// retrying from the caller's side. The pool itself never retries.
func IsRetryableError(err error) bool {
	if errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	if errors.Is(err, sql.ErrConnDone) {
		return true
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	return false
}
