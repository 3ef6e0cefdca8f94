package operator

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// WriterSource opens a Writer bound to a fresh database transaction.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator runs each action inside its own database transaction, committing
// on success and rolling back on failure. Actions run on the caller's
// goroutine.
type Operator struct {
	storage WriterSource
	logger  *logrus.Logger
}

func NewOperator(s WriterSource, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		logger:  logger,
	}
}

// Process performs action atomically.
func (o *Operator) Process(ctx context.Context, action actions.IAction) error {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	err = action.Perform(ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			o.logger.WithError(rollbackErr).Error("Operator.Process.rollbackFailed")
		}
		if o.logger.IsLevelEnabled(logrus.DebugLevel) {
			o.logger.WithError(err).Debugf("Operator.Process.actionFailed\n%s", spew.Sdump(action))
		}
		return err
	}

	if err = writer.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
