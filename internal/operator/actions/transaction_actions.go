package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionFields are the owner-supplied fields of a ledger entry.
type TransactionFields struct {
	CategoryID  uuid.NullUUID
	Description string
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Date        time.Time
}

func (f TransactionFields) validate(ctx context.Context, writer *storage.Writer, ownerID uuid.UUID) error {
	if !ledger.ValidMoney(f.Amount) {
		return ledger.ErrInvalidAmount
	}
	if !f.Type.Valid() {
		return ledger.ErrInvalidType
	}
	category, err := ownedCategory(ctx, writer, ownerID, f.CategoryID)
	if err != nil {
		return err
	}
	if category != nil && category.Type != f.Type {
		return fmt.Errorf("category %s is %s: %w", category.ID, category.Type, ledger.ErrCategoryTypeMismatch)
	}
	return nil
}

type CreateTransaction struct {
	OwnerID uuid.UUID
	TransactionFields
	Now time.Time

	Result uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := t.validate(ctx, writer, t.OwnerID); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		OwnerID:     t.OwnerID,
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Date:        t.Date,
		CreatedAt:   t.Now,
	})
	if err != nil {
		return err
	}

	t.Result = id
	return nil
}

// UpdateTransaction rewrites a transaction. PreviousCategoryID reports the
// category it had before the update.
type UpdateTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
	TransactionFields

	PreviousCategoryID uuid.NullUUID
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := ownedTransaction(ctx, writer, t.OwnerID, t.TransactionID)
	if err != nil {
		return err
	}
	if err = t.validate(ctx, writer, t.OwnerID); err != nil {
		return err
	}

	err = writer.Transactions.Update(ctx, &sqlconfig.TransactionUpdate{
		ID:          t.TransactionID,
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Date:        t.Date,
	})
	if err != nil {
		return err
	}

	t.PreviousCategoryID = existing.CategoryID
	return nil
}

// DeleteTransaction removes a transaction. CategoryID reports the category it
// was assigned to.
type DeleteTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID

	CategoryID uuid.NullUUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := ownedTransaction(ctx, writer, t.OwnerID, t.TransactionID)
	if err != nil {
		return err
	}
	if err = writer.Transactions.Delete(ctx, t.TransactionID); err != nil {
		return err
	}

	t.CategoryID = existing.CategoryID
	return nil
}

func ownedTransaction(ctx context.Context, writer *storage.Writer, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	tx, err := writer.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, ledger.ErrTransactionNotFound)
	}
	if tx.OwnerID != ownerID {
		return nil, fmt.Errorf("transaction %s: %w", id, ledger.ErrOwnershipViolation)
	}
	return tx, nil
}
