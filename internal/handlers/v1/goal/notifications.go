package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type NotificationsInput struct {
	common.OwnerInput
	Days int `query:"days" minimum:"0" maximum:"365" doc:"Expiry window in days; 0 uses the configured default"`
}

// Reminder is a goal annotated with how pressing its deadline is.
type Reminder struct {
	common.Goal
	Urgency       string `json:"urgency" enum:"overdue,critical,high,medium,low"`
	TimeRemaining string `json:"timeRemaining"`
}

type Stats struct {
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	Active         int    `json:"active"`
	Cancelled      int    `json:"cancelled"`
	CompletionRate string `json:"completionRate" doc:"Completed share in percent, one decimal"`
}

type NotificationsBody struct {
	Expiring         []Reminder    `json:"expiring" doc:"Active goals due within the window, soonest first"`
	Overdue          []Reminder    `json:"overdue" doc:"Active goals past their deadline, most recent first"`
	RecentlyAchieved []common.Goal `json:"recentlyAchieved" doc:"Goals completed in the last 24 hours"`
	Stats            Stats         `json:"stats"`
}

type NotificationsOutput struct {
	Body NotificationsBody
}

// notifier is the interface for the goal reminder queries.
type notifier interface {
	ExpiringWithin(ctx context.Context, ownerID uuid.UUID, days int) ([]ledger.Goal, error)
	Overdue(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error)
	RecentlyAchieved(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error)
	AchievementStats(ctx context.Context, ownerID uuid.UUID) (*service.AchievementStats, error)
	UrgencyLevel(deadline time.Time) ledger.Urgency
	TimeRemaining(deadline time.Time) string
}

// NotificationsHandler handles GET /v1/notifications/goals.
type NotificationsHandler struct {
	NotificationService notifier
	DefaultDays         int
}

func NewNotificationsHandler(svc notifier, defaultDays int) *NotificationsHandler {
	return &NotificationsHandler{NotificationService: svc, DefaultDays: defaultDays}
}

func (h *NotificationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goal-notifications",
		Method:      http.MethodGet,
		Path:        "/v1/notifications/goals",
		Summary:     "Goal notifications",
		Description: "Returns expiring, overdue and recently achieved goals with completion stats.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *NotificationsHandler) handle(ctx context.Context, input *NotificationsInput) (*NotificationsOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	days := input.Days
	if days < 1 {
		days = h.DefaultDays
	}

	var (
		expiring, overdue, achieved []ledger.Goal
		stats                       *service.AchievementStats
	)
	stopTimer := logging.StartTiming(ctx, "goalNotificationsMs")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		expiring, err = h.NotificationService.ExpiringWithin(gctx, ownerID, days)
		return err
	})
	g.Go(func() (err error) {
		overdue, err = h.NotificationService.Overdue(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		achieved, err = h.NotificationService.RecentlyAchieved(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		stats, err = h.NotificationService.AchievementStats(gctx, ownerID)
		return err
	})
	err = g.Wait()
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to load goal notifications", err)
	}

	return &NotificationsOutput{Body: NotificationsBody{
		Expiring:         h.reminders(expiring),
		Overdue:          h.reminders(overdue),
		RecentlyAchieved: common.NewGoals(achieved),
		Stats: Stats{
			Total:          stats.Total,
			Completed:      stats.Completed,
			Active:         stats.Active,
			Cancelled:      stats.Cancelled,
			CompletionRate: stats.CompletionRate.StringFixed(1),
		},
	}}, nil
}

func (h *NotificationsHandler) reminders(goals []ledger.Goal) []Reminder {
	out := make([]Reminder, len(goals))
	for i, goal := range goals {
		out[i] = Reminder{
			Goal:          common.NewGoal(goal),
			Urgency:       string(h.NotificationService.UrgencyLevel(goal.Deadline)),
			TimeRemaining: h.NotificationService.TimeRemaining(goal.Deadline),
		}
	}
	return out
}
