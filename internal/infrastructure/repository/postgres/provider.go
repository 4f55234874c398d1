package postgres

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/clubstats/statsboard/internal/platform/logging"
	"github.com/clubstats/statsboard/internal/platform/resilience"
	"github.com/clubstats/statsboard/internal/usecase"
)

const dialPingTimeout = 5 * time.Second

// Provider hands out the shared database handle. The dial is deferred to the
// first query so the dashboard shell can come up while the store is missing
// or unreachable; a failed dial is retried on the next call. An optional
// circuit breaker fronts the dial so a dead store fails fast instead of
// stalling every widget on dial timeouts.
type Provider struct {
	url     string
	opts    []otelsql.Option
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger

	mu sync.Mutex
	db *sqlx.DB
}

func NewProvider(dbURL string, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger, opts ...otelsql.Option) *Provider {
	if logger == nil {
		logger = logging.Default()
	}

	p := &Provider{url: dbURL, opts: opts, logger: logger}

	breakerCfg = resilience.NormalizeCircuitBreakerConfig(breakerCfg)
	if breakerCfg.Enabled {
		p.breaker = resilience.NewCircuitBreaker(
			breakerCfg.FailureThreshold,
			breakerCfg.OpenTimeout,
			breakerCfg.HalfOpenMaxReq,
		)
	}

	return p
}

// DB returns the shared handle, dialing and pinging on first use. Missing
// configuration and unreachable stores both surface as ErrStoreUnavailable.
func (p *Provider) DB(ctx context.Context) (*sqlx.DB, error) {
	if p.url == "" {
		return nil, crerr.Mark(crerr.New("database url is not configured"), usecase.ErrStoreUnavailable)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	if p.breaker != nil {
		if err := p.breaker.Allow(); err != nil {
			return nil, crerr.Mark(err, usecase.ErrStoreUnavailable)
		}
	}

	db, err := p.dial(ctx)
	if err != nil {
		if p.breaker != nil {
			p.breaker.RecordFailure()
		}
		p.logger.ErrorContext(ctx, "database dial failed", "error", err)

		return nil, crerr.Mark(err, usecase.ErrStoreUnavailable)
	}

	if p.breaker != nil {
		p.breaker.RecordSuccess()
	}
	p.db = db
	p.logger.InfoContext(ctx, "database connection established")

	return db, nil
}

func (p *Provider) dial(ctx context.Context) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", p.url, p.opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "open database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, dialPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping database")
	}

	return db, nil
}

// Close releases the handle if one was ever established.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}

	err := p.db.Close()
	p.db = nil

	return err
}
