package ledger

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Filter holds the optional predicates of a ledger query. Unset fields match
// everything. Date bounds are inclusive and apply to the business date;
// CreatedSince applies to the record creation time.
type Filter struct {
	StartDate    omit.Val[time.Time]
	EndDate      omit.Val[time.Time]
	CategoryID   omit.Val[uuid.UUID]
	Type         omit.Val[TransactionType]
	CreatedSince omit.Val[time.Time]
}

// Matches reports whether tx satisfies every set predicate.
func (f Filter) Matches(tx Transaction) bool {
	if start, ok := f.StartDate.Get(); ok && Date(tx.Date).Before(Date(start)) {
		return false
	}
	if end, ok := f.EndDate.Get(); ok && Date(tx.Date).After(Date(end)) {
		return false
	}
	if categoryID, ok := f.CategoryID.Get(); ok {
		if !tx.CategoryID.Valid || tx.CategoryID.UUID != categoryID {
			return false
		}
	}
	if txType, ok := f.Type.Get(); ok && tx.Type != txType {
		return false
	}
	if since, ok := f.CreatedSince.Get(); ok && tx.CreatedAt.Before(since) {
		return false
	}
	return true
}

// Select returns the transactions matching f, preserving order.
func Select(transactions []Transaction, f Filter) []Transaction {
	result := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if f.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}
