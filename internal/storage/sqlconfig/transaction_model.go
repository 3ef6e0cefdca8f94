package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// transactionRow is the scan target for the transactions table.
type transactionRow struct {
	ID          uuid.UUID              `db:"id"`
	OwnerID     uuid.UUID              `db:"owner_id"`
	CategoryID  uuid.NullUUID          `db:"category_id"`
	Description string                 `db:"description"`
	Amount      decimal.Decimal        `db:"amount"`
	Type        ledger.TransactionType `db:"type"`
	Date        time.Time              `db:"date"`
	CreatedAt   time.Time              `db:"created_at"`
}

var transactionColumns = []any{"id", "owner_id", "category_id", "description", "amount", "type", "date", "created_at"}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID     uuid.UUID
	CategoryID  uuid.NullUUID
	Description string
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Date        time.Time
	CreatedAt   time.Time // defaults to now() in the database if zero
}

// TransactionUpdate replaces the mutable fields of an existing transaction.
type TransactionUpdate struct {
	ID          uuid.UUID
	CategoryID  uuid.NullUUID
	Description string
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Date        time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

func rowToTransaction(row *transactionRow) ledger.Transaction {
	return ledger.Transaction{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		CategoryID:  row.CategoryID,
		Description: row.Description,
		Amount:      row.Amount,
		Type:        row.Type,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
