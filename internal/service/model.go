package service

import (
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// CategorizedTransaction is a transaction joined with its category. Category
// is nil for uncategorized transactions.
type CategorizedTransaction struct {
	ledger.Transaction
	Category *ledger.Category
}

// CategoryTotal is the per-category aggregate used by the dashboard and
// reports. Total is income plus expenses. Category is nil for the
// uncategorized bucket.
type CategoryTotal struct {
	Category *ledger.Category
	Type     ledger.TransactionType
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Total    decimal.Decimal
	Count    int
}

func categorize(transactions []ledger.Transaction, index map[uuid.UUID]ledger.Category) []CategorizedTransaction {
	result := make([]CategorizedTransaction, len(transactions))
	for i, tx := range transactions {
		result[i] = CategorizedTransaction{Transaction: tx, Category: lookupCategory(index, tx.CategoryID)}
	}
	return result
}

// categoryTotals groups transactions by category, largest total first. Ties
// keep the order in which categories first appear.
func categoryTotals(transactions []ledger.Transaction, index map[uuid.UUID]ledger.Category) []CategoryTotal {
	groups := ledger.GroupByCategory(transactions)
	totals := make([]CategoryTotal, len(groups))
	for i, group := range groups {
		category := lookupCategory(index, group.CategoryID)
		txType := group.FirstType
		if category != nil {
			txType = category.Type
		}
		totals[i] = CategoryTotal{
			Category: category,
			Type:     txType,
			Income:   group.Totals.Income,
			Expenses: group.Totals.Expenses,
			Net:      group.Totals.Net(),
			Total:    group.Total(),
			Count:    group.Totals.Count(),
		}
	}
	sortByTotalDesc(totals)
	return totals
}

func lookupCategory(index map[uuid.UUID]ledger.Category, id uuid.NullUUID) *ledger.Category {
	if !id.Valid {
		return nil
	}
	category, ok := index[id.UUID]
	if !ok {
		return nil
	}
	return &category
}

func sortByTotalDesc(totals []CategoryTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
}
