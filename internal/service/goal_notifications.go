package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const recentAchievementWindow = 24 * time.Hour

// AchievementStats counts an owner's goals by status.
type AchievementStats struct {
	Total          int
	Completed      int
	Active         int
	Cancelled      int
	CompletionRate decimal.Decimal
}

// NotificationService answers the read-only goal queries behind reminders
// and achievement badges.
type NotificationService struct {
	goals       sqlconfig.IGoalTable
	clock       clock.Clock
	defaultDays int
}

// NewNotificationService creates a new NotificationService. defaultDays is
// the window used by HasExpiringGoals.
func NewNotificationService(goals sqlconfig.IGoalTable, clk clock.Clock, defaultDays int) *NotificationService {
	return &NotificationService{
		goals:       goals,
		clock:       clk,
		defaultDays: defaultDays,
	}
}

func (s *NotificationService) listByStatus(ctx context.Context, ownerID uuid.UUID, status ledger.GoalStatus) ([]ledger.Goal, error) {
	goals, err := s.goals.List(ctx, ownerID, &sqlconfig.GoalFilter{Status: omit.From(status)})
	if err != nil {
		return nil, fmt.Errorf("listing %s goals for owner %s: %w", status, ownerID, err)
	}
	return goals, nil
}

// RecentlyAchieved returns completed goals updated within the last 24 hours,
// most recent first.
func (s *NotificationService) RecentlyAchieved(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error) {
	completed, err := s.AllAchieved(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	since := s.clock.Now().Add(-recentAchievementWindow)
	recent := make([]ledger.Goal, 0, len(completed))
	for _, goal := range completed {
		if !goal.UpdatedAt.Before(since) {
			recent = append(recent, goal)
		}
	}
	return recent, nil
}

// AllAchieved returns every completed goal, most recently updated first.
func (s *NotificationService) AllAchieved(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error) {
	goals, err := s.listByStatus(ctx, ownerID, ledger.GoalStatusCompleted)
	if err != nil {
		return nil, err
	}

	result := make([]ledger.Goal, len(goals))
	copy(result, goals)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

// HasRecentAchievements reports whether RecentlyAchieved is non-empty.
func (s *NotificationService) HasRecentAchievements(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	recent, err := s.RecentlyAchieved(ctx, ownerID)
	return len(recent) > 0, err
}

// ExpiringWithin returns active goals whose deadline falls between today and
// today plus days, both inclusive, soonest first.
func (s *NotificationService) ExpiringWithin(ctx context.Context, ownerID uuid.UUID, days int) ([]ledger.Goal, error) {
	goals, err := s.listByStatus(ctx, ownerID, ledger.GoalStatusActive)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expiring := make([]ledger.Goal, 0, len(goals))
	for _, goal := range goals {
		remaining := ledger.DaysBetween(now, goal.Deadline)
		if remaining >= 0 && remaining <= days {
			expiring = append(expiring, goal)
		}
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return ledger.Date(expiring[i].Deadline).Before(ledger.Date(expiring[j].Deadline))
	})
	return expiring, nil
}

// ExpiringToday returns active goals due today or tomorrow.
func (s *NotificationService) ExpiringToday(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error) {
	return s.ExpiringWithin(ctx, ownerID, 1)
}

// ExpiringThisWeek returns active goals due within the next seven days.
func (s *NotificationService) ExpiringThisWeek(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error) {
	return s.ExpiringWithin(ctx, ownerID, 7)
}

// HasExpiringGoals reports whether any active goal expires within the
// configured default window.
func (s *NotificationService) HasExpiringGoals(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	expiring, err := s.ExpiringWithin(ctx, ownerID, s.defaultDays)
	return len(expiring) > 0, err
}

// Overdue returns active goals whose deadline has passed, latest deadline
// first.
func (s *NotificationService) Overdue(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error) {
	goals, err := s.listByStatus(ctx, ownerID, ledger.GoalStatusActive)
	if err != nil {
		return nil, err
	}

	today := ledger.Date(s.clock.Now())
	overdue := make([]ledger.Goal, 0, len(goals))
	for _, goal := range goals {
		if ledger.Date(goal.Deadline).Before(today) {
			overdue = append(overdue, goal)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return ledger.Date(overdue[i].Deadline).After(ledger.Date(overdue[j].Deadline))
	})
	return overdue, nil
}

// UrgencyLevel classifies deadline against the service clock.
func (s *NotificationService) UrgencyLevel(deadline time.Time) ledger.Urgency {
	return ledger.UrgencyLevel(deadline, s.clock.Now())
}

// TimeRemaining describes the time left until deadline, e.g. "due in 3 days".
func (s *NotificationService) TimeRemaining(deadline time.Time) string {
	return ledger.TimeRemaining(deadline, s.clock.Now())
}

// AchievementStats counts the owner's goals. CompletionRate is the completed
// share in percent, rounded to one decimal, and 0 for an owner without goals.
func (s *NotificationService) AchievementStats(ctx context.Context, ownerID uuid.UUID) (*AchievementStats, error) {
	goals, err := s.goals.List(ctx, ownerID, &sqlconfig.GoalFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing goals for owner %s: %w", ownerID, err)
	}

	stats := &AchievementStats{Total: len(goals), CompletionRate: decimal.Zero}
	for _, goal := range goals {
		switch goal.Status {
		case ledger.GoalStatusCompleted:
			stats.Completed++
		case ledger.GoalStatusActive:
			stats.Active++
		case ledger.GoalStatusCancelled:
			stats.Cancelled++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = decimal.NewFromInt(int64(stats.Completed)).
			Div(decimal.NewFromInt(int64(stats.Total))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}
	return stats, nil
}
