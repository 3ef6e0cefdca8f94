package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Operation is the kind of ledger mutation.
type Operation string

const (
	OperationCreated Operation = "created"
	OperationUpdated Operation = "updated"
	OperationDeleted Operation = "deleted"
)

func (o Operation) Valid() bool {
	switch o {
	case OperationCreated, OperationUpdated, OperationDeleted:
		return true
	}
	return false
}

var ErrMalformedEvent = errors.New("malformed ledger event")

// TransactionMutated announces that one transaction of an owner was created,
// updated or deleted. CategoryID is the category after the mutation (before
// it, for deletes). PreviousCategoryID is set on updates that moved the
// transaction out of a category.
type TransactionMutated struct {
	OwnerID            uuid.UUID     `json:"owner_id"`
	TransactionID      uuid.UUID     `json:"transaction_id"`
	Operation          Operation     `json:"operation"`
	CategoryID         uuid.NullUUID `json:"category_id"`
	PreviousCategoryID uuid.NullUUID `json:"previous_category_id"`
	Timestamp          time.Time     `json:"timestamp"`
}

// Categories lists the distinct categories touched by the mutation.
func (e TransactionMutated) Categories() []uuid.UUID {
	var ids []uuid.UUID
	if e.CategoryID.Valid {
		ids = append(ids, e.CategoryID.UUID)
	}
	if e.PreviousCategoryID.Valid && e.PreviousCategoryID != e.CategoryID {
		ids = append(ids, e.PreviousCategoryID.UUID)
	}
	return ids
}

func (e TransactionMutated) Validate() error {
	if e.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: missing owner", ErrMalformedEvent)
	}
	if !e.Operation.Valid() {
		return fmt.Errorf("%w: unknown operation %q", ErrMalformedEvent, e.Operation)
	}
	return nil
}

func (e TransactionMutated) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionMutatedFromJSON decodes and validates a wire message.
func TransactionMutatedFromJSON(data []byte) (TransactionMutated, error) {
	var event TransactionMutated
	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	return event, event.Validate()
}
