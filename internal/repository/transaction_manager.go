package repository

import (
	"context"
	"fmt"

	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type contextKey string

// TransactionContextKey carries the active *sqlx.Tx in a context.
const TransactionContextKey contextKey = "tx"

// GetExecutor returns the transaction stored in ctx, or db when there is none.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx := ctx.Value(TransactionContextKey); tx != nil {
		if sqlxTx, ok := tx.(*sqlx.Tx); ok {
			return sqlxTx
		}
	}
	return db
}

// TransactionManagerAdapter implements domain.TransactionManager with sqlx.
type TransactionManagerAdapter struct {
	db *sqlx.DB
}

// NewTransactionManagerAdapter creates a new transaction manager.
func NewTransactionManagerAdapter(db *sqlx.DB) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

// WithTransaction runs fn inside a transaction. fn's error or a panic rolls it back.
func (tma *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tma.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Get().Error("Failed to rollback transaction after panic", zap.Error(rollbackErr))
			}
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, TransactionContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
