package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newGoalTestService(t *testing.T, book *memoryLedger) (*GoalService, *mockProcessor, *sqlconfig.MockIGoalTable) {
	t.Helper()
	processor := &mockProcessor{}
	goals := sqlconfig.NewMockIGoalTable(t)
	return NewGoalService(processor, goals, book, fixedNow), processor, goals
}

func TestGoalService_Create(t *testing.T) {
	svc, processor, _ := newGoalTestService(t, &memoryLedger{})

	input := GoalInput{
		Name:         "Vacation",
		TargetAmount: decimal.NewFromInt(2000),
		Deadline:     day(2025, 12, 1),
	}
	created := someGoal(ledger.GoalStatusActive, uuid.NullUUID{})

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		c, ok := a.(*actions.CreateGoal)
		return ok && c.OwnerID == ownerID && c.Name == "Vacation" &&
			c.TargetAmount.Equal(input.TargetAmount) && c.Now.Equal(testNow)
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateGoal).Result = created
	})

	goal, err := svc.Create(context.Background(), ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, created, goal)
	processor.AssertExpectations(t)
}

func TestGoalService_UpdatePropagatesError(t *testing.T) {
	svc, processor, _ := newGoalTestService(t, &memoryLedger{})
	goalID := uuid.Must(uuid.NewV4())

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		u, ok := a.(*actions.UpdateGoal)
		return ok && u.GoalID == goalID
	})).Return(ledger.ErrOwnershipViolation)

	_, err := svc.Update(context.Background(), ownerID, goalID, GoalInput{TargetAmount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ledger.ErrOwnershipViolation)
}

func TestGoalService_RecomputeAll(t *testing.T) {
	svc, processor, goals := newGoalTestService(t, &memoryLedger{})

	active := someGoal(ledger.GoalStatusActive, uuid.NullUUID{})
	completed := someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{})
	broken := someGoal(ledger.GoalStatusCancelled, uuid.NullUUID{})

	goals.EXPECT().List(mock.Anything, ownerID, &sqlconfig.GoalFilter{}).
		Return([]ledger.Goal{active, completed, broken}, nil)
	processor.On("Process", mock.Anything, recomputeOf(active.ID)).Return(nil).Run(func(args mock.Arguments) {
		refreshed := active
		refreshed.CurrentAmount = decimal.NewFromInt(250)
		args.Get(1).(*actions.RecomputeGoal).Result = refreshed
	})
	processor.On("Process", mock.Anything, recomputeOf(completed.ID)).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.RecomputeGoal).Result = completed
	})
	processor.On("Process", mock.Anything, recomputeOf(broken.ID)).Return(errors.New("lock timeout"))

	result, err := svc.RecomputeAll(context.Background(), ownerID)
	assert.ErrorContains(t, err, broken.ID.String())
	require.Len(t, result, 3)
	assert.True(t, result[0].CurrentAmount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, broken, result[2])
}

func TestGoalService_ListDefaultsToEmpty(t *testing.T) {
	svc, _, goals := newGoalTestService(t, &memoryLedger{})
	filter := &sqlconfig.GoalFilter{Status: omit.From(ledger.GoalStatusActive)}
	goals.EXPECT().List(mock.Anything, ownerID, filter).Return(nil, nil)

	result, err := svc.List(context.Background(), ownerID, filter)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGoalService_Details(t *testing.T) {
	book := &memoryLedger{}
	savings := book.addCategory("Savings", ledger.TransactionTypeIncome)
	groceries := book.addCategory("Groceries", ledger.TransactionTypeExpense)

	goal := someGoal(ledger.GoalStatusActive, nullID(savings.ID))
	goal.CreatedAt = day(2025, 6, 1)
	goal.Deadline = day(2025, 6, 18)
	goal.CurrentAmount = decimal.NewFromInt(250)
	goal.TargetAmount = decimal.NewFromInt(1000)

	before := book.add(ledger.TransactionTypeIncome, "100", day(2025, 5, 20), &savings)
	counted := book.add(ledger.TransactionTypeIncome, "250", day(2025, 6, 2), &savings)
	book.add(ledger.TransactionTypeExpense, "40", day(2025, 6, 3), &groceries)

	svc, processor, _ := newGoalTestService(t, book)
	processor.On("Process", mock.Anything, recomputeOf(goal.ID)).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.RecomputeGoal).Result = goal
	})

	details, err := svc.Details(context.Background(), ownerID, goal.ID)
	require.NoError(t, err)

	assert.Equal(t, goal, details.Goal)
	assert.Equal(t, "25", details.ProgressPercentage.String())
	assert.Equal(t, 3, details.DaysRemaining)
	assert.Equal(t, ledger.UrgencyHigh, details.Urgency)
	assert.Equal(t, "due in 3 days", details.TimeRemaining)
	require.Len(t, details.Transactions, 1)
	assert.Equal(t, counted.ID, details.Transactions[0].ID)
	assert.NotEqual(t, before.ID, details.Transactions[0].ID)
}

func TestGoalService_DetailsRecomputeFails(t *testing.T) {
	svc, processor, _ := newGoalTestService(t, &memoryLedger{})
	goalID := uuid.Must(uuid.NewV4())
	processor.On("Process", mock.Anything, recomputeOf(goalID)).Return(ledger.ErrGoalNotFound)

	details, err := svc.Details(context.Background(), ownerID, goalID)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, ledger.ErrGoalNotFound)
}
