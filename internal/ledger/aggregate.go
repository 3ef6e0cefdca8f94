package ledger

import (
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Totals is the per-type sum of a transaction set.
type Totals struct {
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	IncomeCount   int
	ExpensesCount int
}

// Count is the number of transactions summed.
func (t Totals) Count() int {
	return t.IncomeCount + t.ExpensesCount
}

// Net is income minus expenses.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

// Sum adds up amounts by type.
func Sum(transactions []Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range transactions {
		switch tx.Type {
		case TransactionTypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
			totals.IncomeCount++
		case TransactionTypeExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount)
			totals.ExpensesCount++
		}
	}
	return totals
}

// CategoryGroup is one bucket of GroupByCategory. Uncategorized transactions
// share the bucket with an invalid CategoryID.
type CategoryGroup struct {
	CategoryID uuid.NullUUID
	Totals     Totals
	// FirstType is the type of the first transaction seen in the bucket.
	FirstType TransactionType
}

// Total is the unsigned volume of the group: income plus expenses.
func (g CategoryGroup) Total() decimal.Decimal {
	return g.Totals.Income.Add(g.Totals.Expenses)
}

// GroupByCategory buckets transactions by category in order of first appearance.
func GroupByCategory(transactions []Transaction) []CategoryGroup {
	index := make(map[uuid.NullUUID]int)
	var groups []CategoryGroup
	for _, tx := range transactions {
		i, ok := index[tx.CategoryID]
		if !ok {
			i = len(groups)
			index[tx.CategoryID] = i
			groups = append(groups, CategoryGroup{
				CategoryID: tx.CategoryID,
				Totals:     Totals{Income: decimal.Zero, Expenses: decimal.Zero},
				FirstType:  tx.Type,
			})
		}
		one := Sum([]Transaction{tx})
		g := &groups[i]
		g.Totals.Income = g.Totals.Income.Add(one.Income)
		g.Totals.Expenses = g.Totals.Expenses.Add(one.Expenses)
		g.Totals.IncomeCount += one.IncomeCount
		g.Totals.ExpensesCount += one.ExpensesCount
	}
	return groups
}

// SortForDisplay returns a copy ordered by date desc, then created_at desc.
func SortForDisplay(transactions []Transaction) []Transaction {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := Date(sorted[i].Date), Date(sorted[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// Recent returns the n most recent transactions in display order.
func Recent(transactions []Transaction, n int) []Transaction {
	sorted := SortForDisplay(transactions)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
