package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Processor runs one action atomically. *operator.Operator satisfies it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Reader    ledger.Reader
	Goals     sqlconfig.IGoalTable
	Processor Processor
	Publisher events.Publisher
	Clock     clock.Clock
	Logger    *logrus.Logger

	ChartMonths        int
	ExpiringWithinDays int
}

// Service holds all business logic services.
type Service struct {
	Goal         *GoalService
	Synchronizer *GoalSynchronizer
	Notification *NotificationService
	Dashboard    *DashboardService
	Chart        *ChartService
	Report       *ReportService
	Transaction  *TransactionService
	Category     *CategoryService
}

// NewService creates a new Service. Subscribe Synchronizer to the dispatcher
// behind deps.Publisher to keep goals in step with the ledger.
func NewService(deps Dependencies) *Service {
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	return &Service{
		Goal:         NewGoalService(deps.Processor, deps.Goals, deps.Reader, deps.Clock),
		Synchronizer: NewGoalSynchronizer(deps.Processor, deps.Goals, deps.Clock, deps.Logger),
		Notification: NewNotificationService(deps.Goals, deps.Clock, deps.ExpiringWithinDays),
		Dashboard:    NewDashboardService(deps.Reader, deps.Clock),
		Chart:        NewChartService(deps.Reader, deps.Clock, deps.ChartMonths),
		Report:       NewReportService(deps.Reader),
		Transaction:  NewTransactionService(deps.Processor, deps.Reader, deps.Publisher, deps.Clock, deps.Logger),
		Category:     NewCategoryService(deps.Processor, deps.Reader),
	}
}
