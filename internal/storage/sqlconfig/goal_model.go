package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

type goalRow struct {
	ID            uuid.UUID         `db:"id"`
	OwnerID       uuid.UUID         `db:"owner_id"`
	CategoryID    uuid.NullUUID     `db:"category_id"`
	Name          string            `db:"name"`
	TargetAmount  decimal.Decimal   `db:"target_amount"`
	CurrentAmount decimal.Decimal   `db:"current_amount"`
	Deadline      time.Time         `db:"deadline"`
	Status        ledger.GoalStatus `db:"status"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

var goalColumns = []any{
	"id", "owner_id", "category_id", "name", "target_amount",
	"current_amount", "deadline", "status", "created_at", "updated_at",
}

// GoalCreate is the input for creating a new goal. Progress columns start at
// their defaults: zero and active.
type GoalCreate struct {
	OwnerID      uuid.UUID
	CategoryID   uuid.NullUUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	CreatedAt    time.Time
}

// GoalUpdate replaces the owner-editable fields of a goal.
type GoalUpdate struct {
	ID           uuid.UUID
	CategoryID   uuid.NullUUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

// GoalFilter specifies filters for listing goals.
type GoalFilter struct {
	Status     omit.Val[ledger.GoalStatus]
	CategoryID omit.Val[uuid.UUID]
}

// IGoalTable defines the interface for goal storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IGoalTable --output mock_IGoalTable.go
type IGoalTable interface {
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*ledger.Goal, error)
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	Update(ctx context.Context, update *GoalUpdate) error
	UpdateProgress(ctx context.Context, goal *ledger.Goal) error
	List(ctx context.Context, ownerID uuid.UUID, filter *GoalFilter) ([]ledger.Goal, error)
}

func rowToGoal(row *goalRow) ledger.Goal {
	return ledger.Goal{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		CategoryID:    row.CategoryID,
		Name:          row.Name,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		Deadline:      row.Deadline,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
