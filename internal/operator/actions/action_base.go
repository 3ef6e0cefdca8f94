package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// recomputeGoal derives and persists goal's progress from the ledger as seen
// by writer's transaction.
func recomputeGoal(ctx context.Context, writer *storage.Writer, goal ledger.Goal, now time.Time) (ledger.Goal, error) {
	txs, err := writer.Transactions.List(ctx, goal.OwnerID, ledger.GoalScope(goal))
	if err != nil {
		return goal, fmt.Errorf("listing transactions for goal %s: %w", goal.ID, err)
	}

	updated, err := ledger.RecomputeGoal(goal, txs, now)
	if err != nil {
		return goal, err
	}

	if err = writer.Goals.UpdateProgress(ctx, &updated); err != nil {
		return goal, fmt.Errorf("persisting progress of goal %s: %w", goal.ID, err)
	}
	return updated, nil
}

// ownedCategory loads a category and checks it belongs to ownerID. An
// invalid categoryID yields nil without touching storage.
func ownedCategory(ctx context.Context, writer *storage.Writer, ownerID uuid.UUID, categoryID uuid.NullUUID) (*ledger.Category, error) {
	if !categoryID.Valid {
		return nil, nil
	}
	category, err := writer.Categories.FindByID(ctx, categoryID.UUID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID.UUID, ledger.ErrCategoryNotFound)
	}
	if category.OwnerID != ownerID {
		return nil, fmt.Errorf("category %s: %w", categoryID.UUID, ledger.ErrOwnershipViolation)
	}
	return category, nil
}
