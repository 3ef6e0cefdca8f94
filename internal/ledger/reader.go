package ledger

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Reader is the read-only, owner-scoped query surface over the ledger.
// Transactions come back ordered by date desc, created_at desc. An owner with
// no data gets empty slices, never an error.
type Reader interface {
	Transactions(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]Transaction, error)
	Categories(ctx context.Context, ownerID uuid.UUID) ([]Category, error)
}

// CategoryIndex maps categories by ID.
func CategoryIndex(categories []Category) map[uuid.UUID]Category {
	index := make(map[uuid.UUID]Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}
