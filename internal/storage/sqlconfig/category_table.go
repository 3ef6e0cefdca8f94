package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key. A missing row yields nil.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Category, error) {
	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[categoryRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	category := rowToCategory(&row)
	return &category, nil
}

// Insert creates a new category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("categories", "owner_id", "name", "type"),
		im.Values(psql.Arg(create.OwnerID), psql.Arg(create.Name), psql.Arg(create.Type)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// List returns the owner's categories ordered by name.
func (t *CategoriesTable) List(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error) {
	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}
	result := make([]ledger.Category, len(rows))
	for i := range rows {
		result[i] = rowToCategory(&rows[i])
	}
	return result, nil
}
