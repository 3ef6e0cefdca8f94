package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// Transaction holds the owner-supplied fields of a ledger entry.
type Transaction struct {
	CategoryID  uuid.NullUUID
	Description string
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Date        time.Time
}

func (t Transaction) fields() actions.TransactionFields {
	return actions.TransactionFields{
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Date:        t.Date,
	}
}

// TransactionService mutates the ledger and announces every committed
// mutation to the publisher.
type TransactionService struct {
	processor Processor
	reader    ledger.Reader
	publisher events.Publisher
	clock     clock.Clock
	logger    *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(processor Processor, reader ledger.Reader, publisher events.Publisher, clk clock.Clock, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		processor: processor,
		reader:    reader,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// CreateTransaction creates a new transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, transaction Transaction) (uuid.UUID, error) {
	now := s.clock.Now()
	action := &actions.CreateTransaction{
		OwnerID:           ownerID,
		TransactionFields: transaction.fields(),
		Now:               now,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	s.publish(ctx, events.TransactionMutated{
		OwnerID:       ownerID,
		TransactionID: action.Result,
		Operation:     events.OperationCreated,
		CategoryID:    transaction.CategoryID,
		Timestamp:     now,
	})
	return action.Result, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID uuid.UUID, transaction Transaction) error {
	action := &actions.UpdateTransaction{
		OwnerID:           ownerID,
		TransactionID:     transactionID,
		TransactionFields: transaction.fields(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}

	s.publish(ctx, events.TransactionMutated{
		OwnerID:            ownerID,
		TransactionID:      transactionID,
		Operation:          events.OperationUpdated,
		CategoryID:         transaction.CategoryID,
		PreviousCategoryID: action.PreviousCategoryID,
		Timestamp:          s.clock.Now(),
	})
	return nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID uuid.UUID) error {
	action := &actions.DeleteTransaction{
		OwnerID:       ownerID,
		TransactionID: transactionID,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}

	s.publish(ctx, events.TransactionMutated{
		OwnerID:       ownerID,
		TransactionID: transactionID,
		Operation:     events.OperationDeleted,
		CategoryID:    action.CategoryID,
		Timestamp:     s.clock.Now(),
	})
	return nil
}

// ListTransactions returns the owner's transactions matching filter, most
// recent first.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error) {
	return s.reader.Transactions(ctx, ownerID, filter)
}

// publish hands the event to the publisher. It runs after commit, so a
// failure is logged and not returned.
func (s *TransactionService) publish(ctx context.Context, event events.TransactionMutated) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"ownerID":       event.OwnerID,
			"transactionID": event.TransactionID,
			"operation":     event.Operation,
		}).Error("TransactionService.publish.failed")
	}
}
