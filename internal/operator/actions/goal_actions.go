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

// RecomputeGoal locks one goal row, derives its progress from the ledger and
// persists it. With OnlyActive set, a goal found terminal under the lock is
// returned unchanged.
type RecomputeGoal struct {
	OwnerID    uuid.UUID
	GoalID     uuid.UUID
	Now        time.Time
	OnlyActive bool

	Result ledger.Goal
}

func (r *RecomputeGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	goal, err := writer.Goals.FindByID(ctx, r.GoalID, true)
	if err != nil {
		return err
	}
	if goal == nil {
		return fmt.Errorf("goal %s: %w", r.GoalID, ledger.ErrGoalNotFound)
	}
	if goal.OwnerID != r.OwnerID {
		return fmt.Errorf("goal %s: %w", r.GoalID, ledger.ErrOwnershipViolation)
	}
	if r.OnlyActive && goal.Status != ledger.GoalStatusActive {
		r.Result = *goal
		return nil
	}

	r.Result, err = recomputeGoal(ctx, writer, *goal, r.Now)
	return err
}

// CreateGoal stores a new goal and immediately derives its progress.
type CreateGoal struct {
	OwnerID      uuid.UUID
	CategoryID   uuid.NullUUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Now          time.Time

	Result ledger.Goal
}

func (c *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if !ledger.ValidMoney(c.TargetAmount) {
		return ledger.ErrInvalidTarget
	}
	if _, err := ownedCategory(ctx, writer, c.OwnerID, c.CategoryID); err != nil {
		return err
	}

	id, err := writer.Goals.Insert(ctx, &sqlconfig.GoalCreate{
		OwnerID:      c.OwnerID,
		CategoryID:   c.CategoryID,
		Name:         c.Name,
		TargetAmount: c.TargetAmount,
		Deadline:     c.Deadline,
		CreatedAt:    c.Now,
	})
	if err != nil {
		return err
	}

	goal := ledger.Goal{
		ID:            id,
		OwnerID:       c.OwnerID,
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      ledger.Date(c.Deadline),
		Status:        ledger.GoalStatusActive,
		CreatedAt:     c.Now,
		UpdatedAt:     c.Now,
	}
	c.Result, err = recomputeGoal(ctx, writer, goal, c.Now)
	return err
}

// UpdateGoal edits the owner-controlled fields of a goal and re-derives its
// progress under the new definition.
type UpdateGoal struct {
	OwnerID      uuid.UUID
	GoalID       uuid.UUID
	CategoryID   uuid.NullUUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Now          time.Time

	Result ledger.Goal
}

func (u *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if !ledger.ValidMoney(u.TargetAmount) {
		return ledger.ErrInvalidTarget
	}

	goal, err := writer.Goals.FindByID(ctx, u.GoalID, true)
	if err != nil {
		return err
	}
	if goal == nil {
		return fmt.Errorf("goal %s: %w", u.GoalID, ledger.ErrGoalNotFound)
	}
	if goal.OwnerID != u.OwnerID {
		return fmt.Errorf("goal %s: %w", u.GoalID, ledger.ErrOwnershipViolation)
	}
	if _, err = ownedCategory(ctx, writer, u.OwnerID, u.CategoryID); err != nil {
		return err
	}

	err = writer.Goals.Update(ctx, &sqlconfig.GoalUpdate{
		ID:           u.GoalID,
		CategoryID:   u.CategoryID,
		Name:         u.Name,
		TargetAmount: u.TargetAmount,
		Deadline:     u.Deadline,
	})
	if err != nil {
		return err
	}

	edited := *goal
	edited.CategoryID = u.CategoryID
	edited.Name = u.Name
	edited.TargetAmount = u.TargetAmount
	edited.Deadline = ledger.Date(u.Deadline)

	u.Result, err = recomputeGoal(ctx, writer, edited, u.Now)
	return err
}
