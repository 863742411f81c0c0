// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type pendingTxContextKey struct{}

var pendingTxKey pendingTxContextKey

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// pendingTx holds a transaction that is created lazily on first
// database access inside a WithTx scope.
type pendingTx struct {
	db        *sql.DB
	tx        TxInterface
	logger    logging.LoggerInterface
	committed bool
	cancel    context.CancelFunc
}

func (p *pendingTx) get() (TxInterface, error) {
	if p.tx != nil {
		return p.tx, nil
	}

	// Detach from the request context so a client disconnect cannot
	// roll back a half-applied mutation; bounded by a timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: false})
	if err != nil {
		cancel()
		return nil, err
	}

	p.tx = tx
	p.cancel = cancel
	return tx, nil
}

func (p *pendingTx) started() bool {
	return p.tx != nil
}

type Client struct {
	// pool is the native pgx pool, held so Close can release it
	pool *pgxpool.Pool
	// db is the database/sql adapter used for transactions and as the
	// default squirrel runner
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the current transaction
// if one is in scope, or to the pool otherwise.
func (c *Client) Statement(ctx context.Context) sq.StatementBuilderType {
	if p := pendingTxFromContext(ctx); p != nil {
		tx, err := p.get()
		if err != nil {
			c.logger.Errorf("failed to start transaction, falling back to pool: %v", err)
		} else {
			return sq.StatementBuilder.
				PlaceholderFormat(sq.Dollar).
				RunWith(tx)
		}
	}

	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		RunWith(c.db)
}

func pendingTxFromContext(ctx context.Context) *pendingTx {
	if p, ok := ctx.Value(pendingTxKey).(*pendingTx); ok {
		return p
	}
	return nil
}

// WithTx runs fn inside a transaction scope. The transaction is created
// lazily on the first statement, committed if fn returns nil and rolled
// back otherwise. If fn never touches the database, nothing is opened.
func (c *Client) WithTx(ctx context.Context, fn func(context.Context) error) error {
	p := &pendingTx{
		db:     c.db,
		logger: c.logger,
	}
	txCtx := context.WithValue(ctx, pendingTxKey, p)

	defer func() {
		if p.started() && !p.committed {
			if err := p.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				c.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if p.cancel != nil {
			p.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if p.started() {
		if err := p.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		p.committed = true
	}

	return nil
}

func (c *Client) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}

	if c.pool != nil {
		c.pool.Close()
	}
}

// NewClient creates a database client from the given configuration.
func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	if cfg.TracingEnabled {
		// otelpgx uses the global TracerProvider, same as our tracer
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	c := new(Client)
	c.pool = pool
	c.db = db

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
