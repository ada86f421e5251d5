// Package simpletxmanager менеджер сериализуемых транзакций поверх *sql.DB
// Используется, когда метрики выключены
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/MRV-PricingService/pkg/dbmetrics"
)

// TransactionManager выполняет функции в сериализуемой транзакции
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции Serializable
// Транзакция прокидывается через context
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin tx: %w", err)
	}

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}

	defer func() {
		if p := recover(); p != nil {
			_ = wrapped.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, wrapped)); err != nil {
		_ = wrapped.Rollback()
		return err
	}

	if err = wrapped.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit: %w", err)
	}

	return nil
}
