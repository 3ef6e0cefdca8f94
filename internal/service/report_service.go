package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

const periodDateLayout = "02/01/2006"

// ReportFilter holds the optional report predicates. Type is ignored unless
// it names a known transaction type.
type ReportFilter struct {
	StartDate  omit.Val[time.Time]
	EndDate    omit.Val[time.Time]
	CategoryID omit.Val[uuid.UUID]
	Type       string
}

// ReportTotals sums the filtered transactions.
type ReportTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	Count    int
}

// TypeTotal aggregates one transaction type. Average is rounded to cents and
// is 0 for an empty type.
type TypeTotal struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

type Report struct {
	Transactions   []CategorizedTransaction
	Totals         ReportTotals
	CategoryTotals []CategoryTotal
	TypeTotals     map[ledger.TransactionType]TypeTotal
	Filter         ReportFilter
	Period         string
	HasData        bool
}

// ExportData is the subset of a report handed to exporters.
type ExportData struct {
	Transactions   []CategorizedTransaction
	Totals         ReportTotals
	CategoryTotals []CategoryTotal
	Period         string
}

func (r *Report) ExportData() ExportData {
	return ExportData{
		Transactions:   r.Transactions,
		Totals:         r.Totals,
		CategoryTotals: r.CategoryTotals,
		Period:         r.Period,
	}
}

// ReportService builds filtered financial reports.
type ReportService struct {
	reader ledger.Reader
}

// NewReportService creates a new ReportService.
func NewReportService(reader ledger.Reader) *ReportService {
	return &ReportService{reader: reader}
}

func (s *ReportService) Build(ctx context.Context, ownerID uuid.UUID, filter ReportFilter) (*Report, error) {
	categories, err := s.reader.Categories(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	index := ledger.CategoryIndex(categories)

	ledgerFilter := ledger.Filter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	if categoryID, ok := filter.CategoryID.Get(); ok {
		if _, owned := index[categoryID]; !owned {
			return nil, fmt.Errorf("category %s: %w", categoryID, ledger.ErrOwnershipViolation)
		}
		ledgerFilter.CategoryID = omit.From(categoryID)
	}
	if txType := ledger.TransactionType(filter.Type); txType.Valid() {
		ledgerFilter.Type = omit.From(txType)
	}

	transactions, err := s.reader.Transactions(ctx, ownerID, ledgerFilter)
	if err != nil {
		return nil, err
	}

	sum := ledger.Sum(transactions)
	return &Report{
		Transactions: categorize(transactions, index),
		Totals: ReportTotals{
			Income:   sum.Income,
			Expenses: sum.Expenses,
			Net:      sum.Net(),
			Count:    sum.Count(),
		},
		CategoryTotals: categoryTotals(transactions, index),
		TypeTotals: map[ledger.TransactionType]TypeTotal{
			ledger.TransactionTypeIncome:  typeTotal(sum.Income, sum.IncomeCount),
			ledger.TransactionTypeExpense: typeTotal(sum.Expenses, sum.ExpensesCount),
		},
		Filter:  filter,
		Period:  periodLabel(filter),
		HasData: len(transactions) > 0,
	}, nil
}

func typeTotal(total decimal.Decimal, count int) TypeTotal {
	average := decimal.Zero
	if count > 0 {
		average = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}
	return TypeTotal{Total: total, Count: count, Average: average}
}

func periodLabel(filter ReportFilter) string {
	start, hasStart := filter.StartDate.Get()
	end, hasEnd := filter.EndDate.Get()

	switch {
	case hasStart && hasEnd:
		return start.Format(periodDateLayout) + " - " + end.Format(periodDateLayout)
	case hasStart:
		return "from " + start.Format(periodDateLayout)
	case hasEnd:
		return "until " + end.Format(periodDateLayout)
	default:
		return "all periods"
	}
}
