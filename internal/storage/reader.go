package storage

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ ledger.Reader = (*Reader)(nil)

// Reader serves owner-scoped ledger queries. It has no mutation capability.
type Reader struct {
	transactions sqlconfig.ITransactionTable
	categories   sqlconfig.ICategoryTable
}

func NewReader(transactions sqlconfig.ITransactionTable, categories sqlconfig.ICategoryTable) *Reader {
	return &Reader{
		transactions: transactions,
		categories:   categories,
	}
}

func (r *Reader) Transactions(ctx context.Context, ownerID uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error) {
	txs, err := r.transactions.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions for owner %s: %w", ownerID, err)
	}
	if txs == nil {
		txs = []ledger.Transaction{}
	}
	return txs, nil
}

func (r *Reader) Categories(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error) {
	categories, err := r.categories.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing categories for owner %s: %w", ownerID, err)
	}
	if categories == nil {
		categories = []ledger.Category{}
	}
	return categories, nil
}
