package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

var (
	ownerID  = uuid.Must(uuid.NewV4())
	otherID  = uuid.Must(uuid.NewV4())
	testNow  = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	fixedNow = clock.Fixed(testNow)
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.TransactionMutated) error {
	return m.Called(ctx, event).Error(0)
}

// memoryLedger is an in-memory ledger.Reader.
type memoryLedger struct {
	transactions []ledger.Transaction
	categories   []ledger.Category
	err          error
}

func (m *memoryLedger) Transactions(_ context.Context, owner uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	owned := []ledger.Transaction{}
	for _, tx := range m.transactions {
		if tx.OwnerID == owner {
			owned = append(owned, tx)
		}
	}
	return ledger.SortForDisplay(ledger.Select(owned, filter)), nil
}

func (m *memoryLedger) Categories(_ context.Context, owner uuid.UUID) ([]ledger.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	owned := []ledger.Category{}
	for _, c := range m.categories {
		if c.OwnerID == owner {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

func (m *memoryLedger) addCategory(name string, txType ledger.TransactionType) ledger.Category {
	category := ledger.Category{
		ID:      uuid.Must(uuid.NewV4()),
		OwnerID: ownerID,
		Name:    name,
		Type:    txType,
	}
	m.categories = append(m.categories, category)
	return category
}

func (m *memoryLedger) add(txType ledger.TransactionType, amount string, date time.Time, category *ledger.Category) ledger.Transaction {
	tx := ledger.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		OwnerID:   ownerID,
		Amount:    decimal.RequireFromString(amount),
		Type:      txType,
		Date:      date,
		CreatedAt: date.Add(9 * time.Hour),
	}
	if category != nil {
		tx.CategoryID = uuid.NullUUID{UUID: category.ID, Valid: true}
	}
	m.transactions = append(m.transactions, tx)
	return tx
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func decimalStrings(values []decimal.Decimal) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = v.String()
	}
	return result
}

func someGoal(status ledger.GoalStatus, category uuid.NullUUID) ledger.Goal {
	return ledger.Goal{
		ID:            uuid.Must(uuid.NewV4()),
		OwnerID:       ownerID,
		CategoryID:    category,
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.Zero,
		Deadline:      testNow.AddDate(0, 1, 0),
		Status:        status,
		CreatedAt:     testNow.AddDate(0, -1, 0),
		UpdatedAt:     testNow.AddDate(0, -1, 0),
	}
}
