package storage

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Txn is the unit of work behind a Writer.
type Txn interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open database transaction.
type Writer struct {
	txn          Txn
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
	Goals        sqlconfig.IGoalTable
}

func NewWriter(
	txn Txn,
	transactions sqlconfig.ITransactionTable,
	categories sqlconfig.ICategoryTable,
	goals sqlconfig.IGoalTable,
) *Writer {
	return &Writer{
		txn:          txn,
		Transactions: transactions,
		Categories:   categories,
		Goals:        goals,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.txn.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.txn.Rollback(ctx)
}
