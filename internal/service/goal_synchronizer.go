package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aarondl/opt/omit"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ events.Handler = (*GoalSynchronizer)(nil)

// GoalSynchronizer keeps active goals in step with ledger mutations. For each
// event it recomputes the owner's active goals on the touched categories and
// every active general goal, each in its own database transaction.
type GoalSynchronizer struct {
	processor Processor
	goals     sqlconfig.IGoalTable
	clock     clock.Clock
	logger    *logrus.Logger
}

// NewGoalSynchronizer creates a new GoalSynchronizer.
func NewGoalSynchronizer(processor Processor, goals sqlconfig.IGoalTable, clk clock.Clock, logger *logrus.Logger) *GoalSynchronizer {
	return &GoalSynchronizer{
		processor: processor,
		goals:     goals,
		clock:     clk,
		logger:    logger,
	}
}

func (s *GoalSynchronizer) HandleTransactionMutated(ctx context.Context, event events.TransactionMutated) error {
	log := s.logger.WithFields(logrus.Fields{
		"ownerID":       event.OwnerID,
		"transactionID": event.TransactionID,
		"operation":     event.Operation,
	})

	goals, err := s.goals.List(ctx, event.OwnerID, &sqlconfig.GoalFilter{
		Status: omit.From(ledger.GoalStatusActive),
	})
	if err != nil {
		log.WithError(err).Error("GoalSynchronizer.Handle.listFailed")
		return fmt.Errorf("listing active goals for owner %s: %w", event.OwnerID, err)
	}

	categories := event.Categories()
	var errs []error
	synced := 0
	for _, goal := range goals {
		if !goal.IsGeneral() && !slices.Contains(categories, goal.CategoryID.UUID) {
			continue
		}

		action := &actions.RecomputeGoal{
			OwnerID:    event.OwnerID,
			GoalID:     goal.ID,
			Now:        s.clock.Now(),
			OnlyActive: true,
		}
		if err := s.processor.Process(ctx, action); err != nil {
			log.WithError(err).WithField("goalID", goal.ID).Error("GoalSynchronizer.Handle.recomputeFailed")
			errs = append(errs, fmt.Errorf("goal %s: %w", goal.ID, err))
			continue
		}
		synced++
		if action.Result.Status != goal.Status {
			log.WithFields(logrus.Fields{
				"goalID": goal.ID,
				"status": action.Result.Status,
			}).Info("GoalSynchronizer.Handle.statusChanged")
		}
	}

	log.WithField("synced", synced).Debug("GoalSynchronizer.Handle.complete")
	return errors.Join(errs...)
}
