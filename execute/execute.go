// Package execute renders statements and runs them on a database/sql
// connection.
package execute

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zoobzio/viewql"
	"go.uber.org/zap"
)

// Executor sends rendered DDL to a database.
type Executor struct {
	db       *sql.DB
	renderer viewql.Renderer
	logger   *zap.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger. Rendered SQL is logged at debug level and
// failures at error level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Executor that renders with r and executes on db.
func New(db *sql.DB, r viewql.Renderer, opts ...Option) *Executor {
	e := &Executor{
		db:       db,
		renderer: r,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render renders stmt without executing it.
func (e *Executor) Render(stmt viewql.Statement) (*viewql.QueryResult, error) {
	dialect := e.renderer.Family().String()
	result, err := e.renderer.Render(stmt)
	if err != nil {
		e.logger.Error("render failed", zap.String("dialect", dialect), zap.Error(err))
		return nil, fmt.Errorf("render %s: %w", dialect, err)
	}
	return result, nil
}

// Exec renders stmt and executes it. Nothing is sent to the database when
// rendering fails.
func (e *Executor) Exec(ctx context.Context, stmt viewql.Statement) error {
	result, err := e.Render(stmt)
	if err != nil {
		return err
	}

	dialect := e.renderer.Family().String()
	e.logger.Debug("executing statement", zap.String("dialect", dialect), zap.String("sql", result.SQL))

	if _, err := e.db.ExecContext(ctx, result.SQL); err != nil {
		e.logger.Error("exec failed",
			zap.String("dialect", dialect),
			zap.String("sql", result.SQL),
			zap.Error(err))
		return fmt.Errorf("exec %s: %w", dialect, err)
	}
	return nil
}

// ExecAll executes statements in order inside one transaction, rolling back
// on the first failure.
func (e *Executor) ExecAll(ctx context.Context, stmts ...viewql.Statement) error {
	results := make([]*viewql.QueryResult, 0, len(stmts))
	for _, stmt := range stmts {
		result, err := e.Render(stmt)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	dialect := e.renderer.Family().String()
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", dialect, err)
	}
	for _, result := range results {
		e.logger.Debug("executing statement", zap.String("dialect", dialect), zap.String("sql", result.SQL))
		if _, err := tx.ExecContext(ctx, result.SQL); err != nil {
			e.logger.Error("exec failed",
				zap.String("dialect", dialect),
				zap.String("sql", result.SQL),
				zap.Error(err))
			if rbErr := tx.Rollback(); rbErr != nil {
				e.logger.Error("rollback failed", zap.String("dialect", dialect), zap.Error(rbErr))
			}
			return fmt.Errorf("exec %s: %w", dialect, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", dialect, err)
	}
	return nil
}
