package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable running on exec, which is
// either the pooled database or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key. A missing row yields nil.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tx := rowToTransaction(&row)
	return &tx, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	createdAt := psql.Raw("DEFAULT")
	if !create.CreatedAt.IsZero() {
		createdAt = psql.Arg(create.CreatedAt)
	}
	query := psql.Insert(
		im.Into("transactions", "owner_id", "category_id", "description", "amount", "type", "date", "created_at"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Description),
			psql.Arg(create.Amount),
			psql.Arg(create.Type),
			psql.Arg(ledger.Date(create.Date)),
			createdAt,
		),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// Update overwrites the mutable fields of a transaction.
func (t *TransactionsTable) Update(ctx context.Context, update *TransactionUpdate) error {
	query := psql.Update(
		um.Table("transactions"),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("date").ToArg(ledger.Date(update.Date)),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// Delete removes a transaction.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// List returns the owner's transactions matching filter, ordered by date desc
// then created_at desc.
func (t *TransactionsTable) List(ctx context.Context, ownerID uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}
	if start, ok := filter.StartDate.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(ledger.Date(start)))))
	}
	if end, ok := filter.EndDate.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(ledger.Date(end)))))
	}
	if categoryID, ok := filter.CategoryID.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))))
	}
	if txType, ok := filter.Type.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(txType))))
	}
	if since, ok := filter.CreatedSince.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").GTE(psql.Arg(since))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]ledger.Transaction, len(rows))
	for i := range rows {
		result[i] = rowToTransaction(&rows[i])
	}
	return result, nil
}

// CountByCategory returns how many transactions reference the category.
func (t *TransactionsTable) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}
