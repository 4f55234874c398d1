package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net"
	"syscall"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/clubstats/statsboard/internal/platform/resilience"
	"github.com/clubstats/statsboard/internal/usecase"
)

func TestClassifyStoreError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "nil", err: nil, unavailable: false},
		{name: "bad conn", err: fmt.Errorf("select teams: %w", driver.ErrBadConn), unavailable: true},
		{name: "refused", err: fmt.Errorf("select teams: %w", syscall.ECONNREFUSED), unavailable: true},
		{name: "net op error", err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ETIMEDOUT}, unavailable: true},
		{name: "pq connection class", err: &pq.Error{Code: "08006"}, unavailable: true},
		{name: "pq auth class", err: &pq.Error{Code: "28P01"}, unavailable: true},
		{name: "pq undefined table", err: &pq.Error{Code: "42P01"}, unavailable: false},
		{name: "plain query error", err: fmt.Errorf("select teams: syntax error"), unavailable: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyStoreError(tc.err)
			if tc.err == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if crerr.Is(got, usecase.ErrStoreUnavailable) != tc.unavailable {
				t.Fatalf("unavailable mark = %v, want %v for %v", !tc.unavailable, tc.unavailable, tc.err)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select team by id: %w", sql.ErrNoRows)) {
		t.Fatal("expected wrapped ErrNoRows to count as not found")
	}
	if isNotFound(fmt.Errorf("select team by id: boom")) {
		t.Fatal("unexpected not-found for plain error")
	}
}

func TestProvider_MissingURLIsUnavailable(t *testing.T) {
	p := NewProvider("", resilience.DefaultCircuitBreakerConfig(), nil)

	if _, err := p.DB(context.Background()); !crerr.Is(err, usecase.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("close without handle: %v", err)
	}
}
