package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
)

// TxFn is the unit of work run by a Transactor. Returning nil commits.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// Transactor runs a function inside a database transaction. Services depend on
// it rather than on *sql.DB so they can be tested without a database.
type Transactor interface {
	WithinTx(ctx context.Context, fn TxFn) error
}

// TransactorOption configures a SQLTransactor.
type TransactorOption func(*SQLTransactor)

// WithIsolation sets the isolation level of every transaction.
func WithIsolation(level sql.IsolationLevel) TransactorOption {
	return func(t *SQLTransactor) {
		t.opts.Isolation = level
	}
}

// SQLTransactor is a Transactor backed by a *sql.DB.
type SQLTransactor struct {
	db   *sql.DB
	opts sql.TxOptions
}

// NewSQLTransactor creates a Transactor for db. Transactions use the driver's
// default isolation level unless WithIsolation is given.
func NewSQLTransactor(db *sql.DB, options ...TransactorOption) *SQLTransactor {
	t := &SQLTransactor{db: db}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// WithinTx begins a transaction, runs fn and commits when fn returns nil.
// A failing fn is rolled back and its error returned as is. Failures of
// begin, commit or rollback wrap ErrTransactionFailed. A panic in fn rolls
// back and is re-raised.
func (t *SQLTransactor) WithinTx(ctx context.Context, fn TxFn) error {
	log := logger.FromContext(ctx)
	started := time.Now()

	tx, err := t.db.BeginTx(ctx, &t.opts)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after panic",
				slog.String("error", redact.Error(rbErr)),
				slog.Any("panic", p))
		} else {
			log.Error("rolled back transaction after panic", slog.Any("panic", p))
		}
		panic(p)
	}()

	if fnErr := fn(ctx, tx); fnErr != nil {
		return rollback(log, tx, fnErr)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed", slog.Duration("elapsed", time.Since(started)))
	return nil
}

// rollback undoes tx after cause. When the rollback itself fails both errors
// stay matchable with errors.Is.
func rollback(log *slog.Logger, tx *sql.Tx, cause error) error {
	rbErr := tx.Rollback()
	if rbErr == nil || errors.Is(rbErr, sql.ErrTxDone) {
		log.Debug("rolled back transaction", slog.String("error", redact.Error(cause)))
		return cause
	}

	log.Error("failed to roll back transaction",
		slog.String("rollback_error", redact.Error(rbErr)),
		slog.String("original_error", redact.Error(cause)))
	return errors.Join(cause, fmt.Errorf("%w: rollback: %w", ErrTransactionFailed, rbErr))
}
