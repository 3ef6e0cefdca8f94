package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newNotificationTestService(t *testing.T) (*NotificationService, *sqlconfig.MockIGoalTable) {
	t.Helper()
	goals := sqlconfig.NewMockIGoalTable(t)
	return NewNotificationService(goals, fixedNow, 7), goals
}

func withStatus(status ledger.GoalStatus) any {
	return mock.MatchedBy(func(f *sqlconfig.GoalFilter) bool {
		got, ok := f.Status.Get()
		return ok && got == status
	})
}

func goalDue(deadline time.Time) ledger.Goal {
	goal := someGoal(ledger.GoalStatusActive, uuid.NullUUID{})
	goal.Deadline = deadline
	return goal
}

func goalIDs(goals []ledger.Goal) []uuid.UUID {
	ids := make([]uuid.UUID, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return ids
}

func TestAchievementStats(t *testing.T) {
	svc, goals := newNotificationTestService(t)
	goals.EXPECT().List(mock.Anything, ownerID, mock.Anything).Return([]ledger.Goal{
		someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{}),
		someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{}),
		someGoal(ledger.GoalStatusActive, uuid.NullUUID{}),
		someGoal(ledger.GoalStatusCancelled, uuid.NullUUID{}),
	}, nil)

	stats, err := svc.AchievementStats(context.Background(), ownerID)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, "50.0", stats.CompletionRate.StringFixed(1))
}

func TestAchievementStats_RoundsToOneDecimal(t *testing.T) {
	svc, goals := newNotificationTestService(t)
	goals.EXPECT().List(mock.Anything, ownerID, mock.Anything).Return([]ledger.Goal{
		someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{}),
		someGoal(ledger.GoalStatusActive, uuid.NullUUID{}),
		someGoal(ledger.GoalStatusActive, uuid.NullUUID{}),
	}, nil)

	stats, err := svc.AchievementStats(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, "33.3", stats.CompletionRate.String())
}

func TestAchievementStats_NoGoals(t *testing.T) {
	svc, goals := newNotificationTestService(t)
	goals.EXPECT().List(mock.Anything, ownerID, mock.Anything).Return(nil, nil)

	stats, err := svc.AchievementStats(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.True(t, stats.CompletionRate.IsZero())
}

func TestRecentlyAchieved(t *testing.T) {
	svc, goals := newNotificationTestService(t)

	fresh := someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{})
	fresh.UpdatedAt = testNow.Add(-2 * time.Hour)
	edge := someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{})
	edge.UpdatedAt = testNow.Add(-24 * time.Hour)
	stale := someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{})
	stale.UpdatedAt = testNow.Add(-25 * time.Hour)

	goals.EXPECT().List(mock.Anything, ownerID, withStatus(ledger.GoalStatusCompleted)).
		Return([]ledger.Goal{stale, edge, fresh}, nil)

	recent, err := svc.RecentlyAchieved(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fresh.ID, edge.ID}, goalIDs(recent))

	has, err := svc.HasRecentAchievements(context.Background(), ownerID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAllAchieved_MostRecentFirst(t *testing.T) {
	svc, goals := newNotificationTestService(t)

	older := someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{})
	older.UpdatedAt = testNow.AddDate(0, 0, -30)
	newer := someGoal(ledger.GoalStatusCompleted, uuid.NullUUID{})
	newer.UpdatedAt = testNow.AddDate(0, 0, -3)

	goals.EXPECT().List(mock.Anything, ownerID, withStatus(ledger.GoalStatusCompleted)).
		Return([]ledger.Goal{older, newer}, nil)

	all, err := svc.AllAchieved(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newer.ID, older.ID}, goalIDs(all))
}

func TestExpiringWithin(t *testing.T) {
	svc, goals := newNotificationTestService(t)

	today := goalDue(day(2025, 6, 15))
	tomorrow := goalDue(day(2025, 6, 16))
	nextWeek := goalDue(day(2025, 6, 22))
	later := goalDue(day(2025, 6, 23))
	yesterday := goalDue(day(2025, 6, 14))

	goals.EXPECT().List(mock.Anything, ownerID, withStatus(ledger.GoalStatusActive)).
		Return([]ledger.Goal{nextWeek, later, yesterday, tomorrow, today}, nil)

	expiring, err := svc.ExpiringWithin(context.Background(), ownerID, 7)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{today.ID, tomorrow.ID, nextWeek.ID}, goalIDs(expiring))

	soon, err := svc.ExpiringToday(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{today.ID, tomorrow.ID}, goalIDs(soon))

	week, err := svc.ExpiringThisWeek(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, week, 3)

	has, err := svc.HasExpiringGoals(context.Background(), ownerID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestOverdue_LatestDeadlineFirst(t *testing.T) {
	svc, goals := newNotificationTestService(t)

	lastMonth := goalDue(day(2025, 5, 15))
	yesterday := goalDue(day(2025, 6, 14))
	today := goalDue(day(2025, 6, 15))

	goals.EXPECT().List(mock.Anything, ownerID, withStatus(ledger.GoalStatusActive)).
		Return([]ledger.Goal{lastMonth, today, yesterday}, nil)

	overdue, err := svc.Overdue(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{yesterday.ID, lastMonth.ID}, goalIDs(overdue))
}

func TestNotifications_StorageError(t *testing.T) {
	svc, goals := newNotificationTestService(t)
	goals.EXPECT().List(mock.Anything, ownerID, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.Overdue(context.Background(), ownerID)
	assert.ErrorContains(t, err, "timeout")

	has, err := svc.HasExpiringGoals(context.Background(), ownerID)
	assert.Error(t, err)
	assert.False(t, has)
}

func TestNotifications_UrgencyAndTimeRemaining(t *testing.T) {
	svc, _ := newNotificationTestService(t)

	assert.Equal(t, ledger.UrgencyCritical, svc.UrgencyLevel(day(2025, 6, 16)))
	assert.Equal(t, ledger.UrgencyOverdue, svc.UrgencyLevel(day(2025, 6, 1)))
	assert.Equal(t, "due today", svc.TimeRemaining(day(2025, 6, 15)))
}
