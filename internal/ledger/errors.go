package ledger

import "errors"

var (
	// ErrOwnershipViolation is returned when an operation names an entity that
	// belongs to a different owner. It is never retried.
	ErrOwnershipViolation = errors.New("entity does not belong to owner")

	ErrGoalNotFound         = errors.New("goal not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryInUse        = errors.New("category has transactions")
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")
	ErrInvalidAmount        = errors.New("amount must be positive with at most two decimals and below 10^12")
	ErrInvalidTarget        = errors.New("target amount must be positive with at most two decimals and below 10^12")
	ErrInvalidType          = errors.New("type must be income or expense")
)
