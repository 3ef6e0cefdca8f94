package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement for a transaction or category.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// maxMoney is the exclusive upper bound of the NUMERIC(14,2) money columns.
var maxMoney = decimal.New(1, 12)

// ValidMoney reports whether d is a positive amount with at most two
// fraction digits that fits the money columns.
func ValidMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(2)) && d.LessThan(maxMoney)
}

// GoalStatus is the derived lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Terminal reports whether the synchronizer leaves goals in this status alone.
func (s GoalStatus) Terminal() bool {
	return s == GoalStatusCompleted || s == GoalStatusCancelled
}

// Transaction is one ledger entry. Date is the business date, CreatedAt the
// record creation time.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	CategoryID  uuid.NullUUID
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Date        time.Time
	CreatedAt   time.Time
}

// Category groups transactions of a single type for one owner.
type Category struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Type    TransactionType
}

// Goal is a savings target. CurrentAmount, Status and UpdatedAt are derived
// from the ledger by RecomputeGoal and are never set by the owner.
type Goal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	CategoryID    uuid.NullUUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsGeneral reports whether the goal tracks the owner's entire ledger.
func (g Goal) IsGeneral() bool {
	return !g.CategoryID.Valid
}
