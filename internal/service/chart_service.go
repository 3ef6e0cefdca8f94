package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/ledger"
)

const (
	defaultChartMonths = 6
	chartMonthKey      = "2006-01"
	chartMonthLabel    = "Jan/2006"
)

// ChartPoint is one month of the chart. Balance is the running sum of Net
// from the oldest month of the window, not the lifetime balance.
type ChartPoint struct {
	Month    string
	Label    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Balance  decimal.Decimal
}

// Chart holds aligned monthly series, oldest month first.
type Chart struct {
	Labels   []string
	Income   []decimal.Decimal
	Expenses []decimal.Decimal
	Balance  []decimal.Decimal
	Points   []ChartPoint
}

// BalanceSeries is the balance-only view of a Chart.
type BalanceSeries struct {
	Labels  []string
	Balance []decimal.Decimal
}

// ChartService builds monthly chart series from the ledger.
type ChartService struct {
	reader        ledger.Reader
	clock         clock.Clock
	defaultMonths int
}

// NewChartService creates a new ChartService. defaultMonths applies when a
// caller asks for fewer than one month.
func NewChartService(reader ledger.Reader, clk clock.Clock, defaultMonths int) *ChartService {
	if defaultMonths < 1 {
		defaultMonths = defaultChartMonths
	}
	return &ChartService{reader: reader, clock: clk, defaultMonths: defaultMonths}
}

// Build returns the last months calendar months ending with the current one.
func (s *ChartService) Build(ctx context.Context, ownerID uuid.UUID, months int) (*Chart, error) {
	if months < 1 {
		months = s.defaultMonths
	}

	now := s.clock.Now()
	first := ledger.MonthStart(now).AddDate(0, -(months - 1), 0)
	transactions, err := s.reader.Transactions(ctx, ownerID, ledger.Filter{
		StartDate: omit.From(first),
		EndDate:   omit.From(ledger.MonthEnd(now)),
	})
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string][]ledger.Transaction, months)
	for _, tx := range transactions {
		key := tx.Date.Format(chartMonthKey)
		byMonth[key] = append(byMonth[key], tx)
	}

	chart := &Chart{
		Labels:   make([]string, 0, months),
		Income:   make([]decimal.Decimal, 0, months),
		Expenses: make([]decimal.Decimal, 0, months),
		Balance:  make([]decimal.Decimal, 0, months),
		Points:   make([]ChartPoint, 0, months),
	}
	balance := decimal.Zero
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0)
		key := month.Format(chartMonthKey)
		totals := ledger.Sum(byMonth[key])
		balance = balance.Add(totals.Net())

		point := ChartPoint{
			Month:    key,
			Label:    month.Format(chartMonthLabel),
			Income:   totals.Income,
			Expenses: totals.Expenses,
			Net:      totals.Net(),
			Balance:  balance,
		}
		chart.Points = append(chart.Points, point)
		chart.Labels = append(chart.Labels, point.Label)
		chart.Income = append(chart.Income, point.Income)
		chart.Expenses = append(chart.Expenses, point.Expenses)
		chart.Balance = append(chart.Balance, point.Balance)
	}
	return chart, nil
}

// BalanceSeries is Build reduced to labels and the running balance.
func (s *ChartService) BalanceSeries(ctx context.Context, ownerID uuid.UUID, months int) (*BalanceSeries, error) {
	chart, err := s.Build(ctx, ownerID, months)
	if err != nil {
		return nil, err
	}
	return &BalanceSeries{Labels: chart.Labels, Balance: chart.Balance}, nil
}
