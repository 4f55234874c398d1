package postgres

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"net"
	"syscall"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/clubstats/statsboard/internal/usecase"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

// classifyStoreError marks connection-kind failures so callers can tell an
// unreachable store apart from a bad query.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return crerr.Mark(err, usecase.ErrStoreUnavailable)
	}

	return err
}

func isConnectionError(err error) bool {
	if crerr.Is(err, driver.ErrBadConn) ||
		crerr.Is(err, io.EOF) ||
		crerr.Is(err, syscall.ECONNREFUSED) ||
		crerr.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if crerr.As(err, &opErr) {
		return true
	}

	var netErr net.Error
	if crerr.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if crerr.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		// 08 connection exception, 28 invalid authorization,
		// 53 insufficient resources, 57 operator intervention.
		case "08", "28", "53", "57":
			return true
		}
	}

	return false
}
