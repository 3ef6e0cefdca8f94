package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

type categoryRow struct {
	ID      uuid.UUID              `db:"id"`
	OwnerID uuid.UUID              `db:"owner_id"`
	Name    string                 `db:"name"`
	Type    ledger.TransactionType `db:"type"`
}

var categoryColumns = []any{"id", "owner_id", "name", "type"}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	OwnerID uuid.UUID
	Name    string
	Type    ledger.TransactionType
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error)
}

func rowToCategory(row *categoryRow) ledger.Category {
	return ledger.Category{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Name:    row.Name,
		Type:    row.Type,
	}
}
