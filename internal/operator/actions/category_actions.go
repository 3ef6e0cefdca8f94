package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateCategory struct {
	OwnerID uuid.UUID
	Name    string
	Type    ledger.TransactionType

	Result uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if !c.Type.Valid() {
		return ledger.ErrInvalidType
	}

	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		OwnerID: c.OwnerID,
		Name:    c.Name,
		Type:    c.Type,
	})
	if err != nil {
		return err
	}

	c.Result = id
	return nil
}

// DeleteCategory removes a category that no transaction references.
type DeleteCategory struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedCategory(ctx, writer, d.OwnerID, uuid.NullUUID{UUID: d.CategoryID, Valid: true}); err != nil {
		return err
	}

	count, err := writer.Transactions.CountByCategory(ctx, d.CategoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category %s has %d transactions: %w", d.CategoryID, count, ledger.ErrCategoryInUse)
	}

	return writer.Categories.Delete(ctx, d.CategoryID)
}
