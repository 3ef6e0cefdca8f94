package service

import (
	"context"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

func TestReport_TypeFilter(t *testing.T) {
	book := &memoryLedger{}
	book.add(ledger.TransactionTypeIncome, "1000", day(2025, 6, 1), nil)
	book.add(ledger.TransactionTypeExpense, "500", day(2025, 6, 2), nil)

	report, err := NewReportService(book).Build(context.Background(), ownerID, ReportFilter{Type: "income"})
	require.NoError(t, err)

	assert.True(t, report.Totals.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, report.Totals.Expenses.IsZero())
	assert.Equal(t, 1, report.Totals.Count)
	assert.True(t, report.HasData)
}

func TestReport_UnknownTypeIsIgnored(t *testing.T) {
	book := &memoryLedger{}
	book.add(ledger.TransactionTypeIncome, "1000", day(2025, 6, 1), nil)
	book.add(ledger.TransactionTypeExpense, "500", day(2025, 6, 2), nil)

	report, err := NewReportService(book).Build(context.Background(), ownerID, ReportFilter{Type: "transfer"})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Totals.Count)
	assert.True(t, report.Totals.Net.Equal(decimal.NewFromInt(500)))
}

func TestReport_TotalsByCategoryAndType(t *testing.T) {
	book := &memoryLedger{}
	food := book.addCategory("Food", ledger.TransactionTypeExpense)
	salary := book.addCategory("Salary", ledger.TransactionTypeIncome)
	book.add(ledger.TransactionTypeExpense, "10", day(2025, 6, 1), &food)
	book.add(ledger.TransactionTypeExpense, "20", day(2025, 6, 2), &food)
	book.add(ledger.TransactionTypeExpense, "3.33", day(2025, 6, 3), &food)
	book.add(ledger.TransactionTypeIncome, "3000", day(2025, 6, 5), &salary)

	report, err := NewReportService(book).Build(context.Background(), ownerID, ReportFilter{})
	require.NoError(t, err)

	require.Len(t, report.CategoryTotals, 2)
	assert.Equal(t, "Salary", report.CategoryTotals[0].Category.Name)
	assert.Equal(t, "Food", report.CategoryTotals[1].Category.Name)
	assert.True(t, report.CategoryTotals[1].Total.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, report.CategoryTotals[1].Net.Equal(decimal.RequireFromString("-33.33")))
	assert.Equal(t, 3, report.CategoryTotals[1].Count)

	expense := report.TypeTotals[ledger.TransactionTypeExpense]
	assert.Equal(t, 3, expense.Count)
	assert.Equal(t, "11.11", expense.Average.StringFixed(2))
	income := report.TypeTotals[ledger.TransactionTypeIncome]
	assert.True(t, income.Average.Equal(decimal.NewFromInt(3000)))

	require.Len(t, report.Transactions, 4)
	assert.Equal(t, day(2025, 6, 5), report.Transactions[0].Date)
	assert.Equal(t, "Salary", report.Transactions[0].Category.Name)
}

func TestReport_DateAndCategoryFilters(t *testing.T) {
	book := &memoryLedger{}
	food := book.addCategory("Food", ledger.TransactionTypeExpense)
	book.add(ledger.TransactionTypeExpense, "10", day(2025, 5, 31), &food)
	book.add(ledger.TransactionTypeExpense, "20", day(2025, 6, 1), &food)
	book.add(ledger.TransactionTypeExpense, "30", day(2025, 6, 30), nil)

	report, err := NewReportService(book).Build(context.Background(), ownerID, ReportFilter{
		StartDate:  omit.From(day(2025, 6, 1)),
		EndDate:    omit.From(day(2025, 6, 30)),
		CategoryID: omit.From(food.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Totals.Count)
	assert.True(t, report.Totals.Expenses.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "01/06/2025 - 30/06/2025", report.Period)
}

func TestReport_ForeignCategory(t *testing.T) {
	book := &memoryLedger{}
	foreign := book.addCategory("Theirs", ledger.TransactionTypeExpense)
	book.categories[0].OwnerID = otherID

	report, err := NewReportService(book).Build(context.Background(), ownerID, ReportFilter{
		CategoryID: omit.From(foreign.ID),
	})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ledger.ErrOwnershipViolation)
}

func TestReport_Empty(t *testing.T) {
	report, err := NewReportService(&memoryLedger{}).Build(context.Background(), ownerID, ReportFilter{})
	require.NoError(t, err)

	assert.False(t, report.HasData)
	assert.Zero(t, report.Totals.Count)
	assert.True(t, report.Totals.Net.IsZero())
	assert.Empty(t, report.CategoryTotals)
	assert.True(t, report.TypeTotals[ledger.TransactionTypeIncome].Average.IsZero())
	assert.Equal(t, "all periods", report.Period)
}

func TestPeriodLabel(t *testing.T) {
	start, end := day(2025, 1, 2), day(2025, 3, 4)

	assert.Equal(t, "02/01/2025 - 04/03/2025", periodLabel(ReportFilter{StartDate: omit.From(start), EndDate: omit.From(end)}))
	assert.Equal(t, "from 02/01/2025", periodLabel(ReportFilter{StartDate: omit.From(start)}))
	assert.Equal(t, "until 04/03/2025", periodLabel(ReportFilter{EndDate: omit.From(end)}))
	assert.Equal(t, "all periods", periodLabel(ReportFilter{CategoryID: omit.From(uuid.Must(uuid.NewV4()))}))
}

func TestReport_ExportData(t *testing.T) {
	book := &memoryLedger{}
	book.add(ledger.TransactionTypeIncome, "1", day(2025, 6, 1), nil)

	report, err := NewReportService(book).Build(context.Background(), ownerID, ReportFilter{})
	require.NoError(t, err)

	export := report.ExportData()
	assert.Equal(t, report.Transactions, export.Transactions)
	assert.Equal(t, report.Totals, export.Totals)
	assert.Equal(t, report.CategoryTotals, export.CategoryTotals)
	assert.Equal(t, report.Period, export.Period)
}
