package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// GoalInput holds the owner-editable fields of a goal.
type GoalInput struct {
	CategoryID   uuid.NullUUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

// GoalDetails is a freshly recomputed goal with its derived views and the
// transactions counting towards it.
type GoalDetails struct {
	Goal               ledger.Goal
	ProgressPercentage decimal.Decimal
	DaysRemaining      int
	Urgency            ledger.Urgency
	TimeRemaining      string
	Transactions       []ledger.Transaction
}

// GoalService handles goal business logic. Every write of a goal's progress
// goes through an operator action.
type GoalService struct {
	processor Processor
	goals     sqlconfig.IGoalTable
	reader    ledger.Reader
	clock     clock.Clock
}

// NewGoalService creates a new GoalService.
func NewGoalService(processor Processor, goals sqlconfig.IGoalTable, reader ledger.Reader, clk clock.Clock) *GoalService {
	return &GoalService{
		processor: processor,
		goals:     goals,
		reader:    reader,
		clock:     clk,
	}
}

// Create stores a goal and returns it with progress already derived.
func (s *GoalService) Create(ctx context.Context, ownerID uuid.UUID, input GoalInput) (ledger.Goal, error) {
	action := &actions.CreateGoal{
		OwnerID:      ownerID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		Deadline:     input.Deadline,
		Now:          s.clock.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Goal{}, err
	}
	return action.Result, nil
}

// Update edits a goal and recomputes it against the new definition.
func (s *GoalService) Update(ctx context.Context, ownerID, goalID uuid.UUID, input GoalInput) (ledger.Goal, error) {
	action := &actions.UpdateGoal{
		OwnerID:      ownerID,
		GoalID:       goalID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		Deadline:     input.Deadline,
		Now:          s.clock.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Goal{}, err
	}
	return action.Result, nil
}

// Recompute derives one goal's progress from the ledger and persists it.
func (s *GoalService) Recompute(ctx context.Context, ownerID, goalID uuid.UUID) (ledger.Goal, error) {
	action := &actions.RecomputeGoal{
		OwnerID: ownerID,
		GoalID:  goalID,
		Now:     s.clock.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Goal{}, err
	}
	return action.Result, nil
}

// RecomputeAll refreshes every goal of the owner, whatever its status. Goals
// that fail keep their stored state and are reported together.
func (s *GoalService) RecomputeAll(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error) {
	goals, err := s.goals.List(ctx, ownerID, &sqlconfig.GoalFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing goals for owner %s: %w", ownerID, err)
	}

	var errs []error
	for i, goal := range goals {
		recomputed, err := s.Recompute(ctx, ownerID, goal.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("goal %s: %w", goal.ID, err))
			continue
		}
		goals[i] = recomputed
	}
	return goals, errors.Join(errs...)
}

// List returns the owner's goals, ordered by deadline.
func (s *GoalService) List(ctx context.Context, ownerID uuid.UUID, filter *sqlconfig.GoalFilter) ([]ledger.Goal, error) {
	if filter == nil {
		filter = &sqlconfig.GoalFilter{}
	}
	goals, err := s.goals.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing goals for owner %s: %w", ownerID, err)
	}
	if goals == nil {
		goals = []ledger.Goal{}
	}
	return goals, nil
}

// Details recomputes a goal and returns it with its progress views.
func (s *GoalService) Details(ctx context.Context, ownerID, goalID uuid.UUID) (*GoalDetails, error) {
	goal, err := s.Recompute(ctx, ownerID, goalID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.reader.Transactions(ctx, ownerID, ledger.GoalScope(goal))
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &GoalDetails{
		Goal:               goal,
		ProgressPercentage: ledger.ProgressPercentage(goal),
		DaysRemaining:      ledger.DaysRemaining(goal, now),
		Urgency:            ledger.UrgencyLevel(goal.Deadline, now),
		TimeRemaining:      ledger.TimeRemaining(goal.Deadline, now),
		Transactions:       transactions,
	}, nil
}
