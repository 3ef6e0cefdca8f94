package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

var _ IGoalTable = (*GoalsTable)(nil)

// GoalsTable provides access to the goals table.
type GoalsTable struct {
	exec bob.Executor
}

func NewGoalsTable(exec bob.Executor) *GoalsTable {
	return &GoalsTable{exec: exec}
}

// FindByID retrieves a goal by primary key. With forUpdate the row stays
// locked until the surrounding transaction ends. A missing row yields nil.
func (t *GoalsTable) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*ledger.Goal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(goalColumns...),
		sm.From("goals"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[goalRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	goal := rowToGoal(&row)
	return &goal, nil
}

// Insert creates a new goal and returns its generated ID.
func (t *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("goals", "owner_id", "category_id", "name", "target_amount", "deadline", "created_at", "updated_at"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Name),
			psql.Arg(create.TargetAmount),
			psql.Arg(ledger.Date(create.Deadline)),
			psql.Arg(create.CreatedAt),
			psql.Arg(create.CreatedAt),
		),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// Update overwrites the owner-editable fields of a goal.
func (t *GoalsTable) Update(ctx context.Context, update *GoalUpdate) error {
	query := psql.Update(
		um.Table("goals"),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("target_amount").ToArg(update.TargetAmount),
		um.SetCol("deadline").ToArg(ledger.Date(update.Deadline)),
		um.Where(psql.Quote("id").EQ(psql.Arg(update.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// UpdateProgress persists the derived columns of goal.
func (t *GoalsTable) UpdateProgress(ctx context.Context, goal *ledger.Goal) error {
	query := psql.Update(
		um.Table("goals"),
		um.SetCol("current_amount").ToArg(goal.CurrentAmount),
		um.SetCol("status").ToArg(goal.Status),
		um.SetCol("updated_at").ToArg(goal.UpdatedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(goal.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// List returns the owner's goals matching filter, ordered by deadline then
// creation. Nil filter returns all.
func (t *GoalsTable) List(ctx context.Context, ownerID uuid.UUID, filter *GoalFilter) ([]ledger.Goal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(goalColumns...),
		sm.From("goals"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	}
	if filter != nil {
		if status, ok := filter.Status.Get(); ok {
			queryMods = append(queryMods, sm.Where(psql.Quote("status").EQ(psql.Arg(status))))
		}
		if categoryID, ok := filter.CategoryID.Get(); ok {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("deadline")).Asc(),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[goalRow]())
	if err != nil {
		return nil, err
	}
	result := make([]ledger.Goal, len(rows))
	for i := range rows {
		result[i] = rowToGoal(&rows[i])
	}
	return result, nil
}
