package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

func TestChart_WindowedRunningBalance(t *testing.T) {
	book := &memoryLedger{}
	book.add(ledger.TransactionTypeIncome, "10000", day(2025, 3, 31), nil)
	book.add(ledger.TransactionTypeIncome, "500", day(2025, 4, 12), nil)
	book.add(ledger.TransactionTypeIncome, "400", day(2025, 5, 1), nil)
	book.add(ledger.TransactionTypeExpense, "100", day(2025, 5, 31), nil)
	book.add(ledger.TransactionTypeExpense, "200", day(2025, 6, 15), nil)

	chart, err := NewChartService(book, fixedNow, 6).Build(context.Background(), ownerID, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"Apr/2025", "May/2025", "Jun/2025"}, chart.Labels)
	assert.Equal(t, []string{"500", "800", "600"}, decimalStrings(chart.Balance))
	assert.Equal(t, []string{"500", "400", "0"}, decimalStrings(chart.Income))
	assert.Equal(t, []string{"0", "100", "200"}, decimalStrings(chart.Expenses))

	require.Len(t, chart.Points, 3)
	assert.Equal(t, "2025-05", chart.Points[1].Month)
	assert.Equal(t, "300", chart.Points[1].Net.String())
	assert.Equal(t, "-200", chart.Points[2].Net.String())
}

func TestChart_DefaultMonths(t *testing.T) {
	svc := NewChartService(&memoryLedger{}, fixedNow, 6)

	chart, err := svc.Build(context.Background(), ownerID, 0)
	require.NoError(t, err)
	require.Len(t, chart.Labels, 6)
	assert.Equal(t, "Jan/2025", chart.Labels[0])
	assert.Equal(t, "Jun/2025", chart.Labels[5])
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "0"}, decimalStrings(chart.Balance))
}

func TestChart_ConfiguredDefaultFallsBackToSix(t *testing.T) {
	chart, err := NewChartService(&memoryLedger{}, fixedNow, 0).Build(context.Background(), ownerID, -2)
	require.NoError(t, err)
	assert.Len(t, chart.Points, 6)
}

func TestChart_CrossesYearBoundary(t *testing.T) {
	book := &memoryLedger{}
	book.add(ledger.TransactionTypeIncome, "50", day(2024, 12, 24), nil)

	chart, err := NewChartService(book, fixedNow, 6).Build(context.Background(), ownerID, 7)
	require.NoError(t, err)
	assert.Equal(t, "Dec/2024", chart.Labels[0])
	assert.Equal(t, "50", chart.Balance[6].String())
}

func TestChart_BalanceSeries(t *testing.T) {
	book := &memoryLedger{}
	book.add(ledger.TransactionTypeIncome, "500", day(2025, 5, 2), nil)

	series, err := NewChartService(book, fixedNow, 6).BalanceSeries(context.Background(), ownerID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"May/2025", "Jun/2025"}, series.Labels)
	assert.Equal(t, []string{"500", "500"}, decimalStrings(series.Balance))
}
