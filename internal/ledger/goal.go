package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Urgency ranks how close an active goal is to its deadline.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

var hundred = decimal.NewFromInt(100)

// GoalScope is the ledger filter selecting the transactions that count
// towards goal: created on or after the goal itself and, for category goals,
// assigned to that category.
func GoalScope(goal Goal) Filter {
	filter := Filter{CreatedSince: omit.From(goal.CreatedAt)}
	if goal.CategoryID.Valid {
		filter.CategoryID = omit.From(goal.CategoryID.UUID)
	}
	return filter
}

// RecomputeGoal derives CurrentAmount and Status of goal from the owner's
// ledger at now, and stamps UpdatedAt with now. transactions may be the whole
// ledger or any superset of the goal's scope; every entry must belong to the
// goal's owner.
func RecomputeGoal(goal Goal, transactions []Transaction, now time.Time) (Goal, error) {
	for _, tx := range transactions {
		if tx.OwnerID != goal.OwnerID {
			return goal, fmt.Errorf("transaction %s for goal %s: %w", tx.ID, goal.ID, ErrOwnershipViolation)
		}
	}

	net := Sum(Select(transactions, GoalScope(goal))).Net()
	if net.IsNegative() {
		net = decimal.Zero
	}

	prior := goal.Status
	goal.CurrentAmount = net
	switch {
	case goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount):
		goal.Status = GoalStatusCompleted
	case Date(goal.Deadline).Before(Date(now)) && prior == GoalStatusActive:
		goal.Status = GoalStatusCancelled
	default:
		goal.Status = GoalStatusActive
	}
	goal.UpdatedAt = now

	return goal, nil
}

// ProgressPercentage is CurrentAmount as a share of TargetAmount, capped at 100.
// A non-positive target yields 0.
func ProgressPercentage(goal Goal) decimal.Decimal {
	if !goal.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	pct := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// DaysRemaining is the number of whole days until the deadline, never negative.
func DaysRemaining(goal Goal, now time.Time) int {
	days := DaysBetween(now, goal.Deadline)
	if days < 0 {
		return 0
	}
	return days
}

// UrgencyLevel classifies a deadline relative to now.
func UrgencyLevel(deadline, now time.Time) Urgency {
	days := DaysBetween(now, deadline)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= 1:
		return UrgencyCritical
	case days <= 3:
		return UrgencyHigh
	case days <= 7:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// TimeRemaining renders the distance to a deadline, e.g. "due in 3 days" or
// "overdue by 2 weeks".
func TimeRemaining(deadline, now time.Time) string {
	today, due := Date(now), Date(deadline)
	switch {
	case due.Equal(today):
		return "due today"
	case due.Before(today):
		return "overdue by " + strings.TrimSpace(humanize.RelTime(due, today, "", ""))
	default:
		return "due in " + strings.TrimSpace(humanize.RelTime(today, due, "", ""))
	}
}
