package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/ledger"
)

const recentTransactionsLimit = 5

// Dashboard is the landing-page snapshot of an owner's finances. Monthly
// figures cover the calendar month containing the snapshot time.
type Dashboard struct {
	CurrentBalance     decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	MonthlyNet         decimal.Decimal
	CategorySummary    []CategoryTotal
	RecentTransactions []CategorizedTransaction
	HasTransactions    bool
}

// DashboardService builds dashboard snapshots from the ledger.
type DashboardService struct {
	reader ledger.Reader
	clock  clock.Clock
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(reader ledger.Reader, clk clock.Clock) *DashboardService {
	return &DashboardService{reader: reader, clock: clk}
}

func (s *DashboardService) Build(ctx context.Context, ownerID uuid.UUID) (*Dashboard, error) {
	var (
		transactions []ledger.Transaction
		categories   []ledger.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.reader.Transactions(gctx, ownerID, ledger.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.reader.Categories(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthly := ledger.Select(transactions, ledger.Filter{
		StartDate: omit.From(ledger.MonthStart(now)),
		EndDate:   omit.From(ledger.MonthEnd(now)),
	})
	lifetimeTotals := ledger.Sum(transactions)
	monthlyTotals := ledger.Sum(monthly)
	index := ledger.CategoryIndex(categories)

	return &Dashboard{
		CurrentBalance:     lifetimeTotals.Net(),
		MonthlyIncome:      monthlyTotals.Income,
		MonthlyExpenses:    monthlyTotals.Expenses,
		MonthlyNet:         monthlyTotals.Net(),
		CategorySummary:    categoryTotals(monthly, index),
		RecentTransactions: categorize(ledger.Recent(transactions, recentTransactionsLimit), index),
		HasTransactions:    len(transactions) > 0,
	}, nil
}
