package report

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ReportInput struct {
	common.OwnerInput
	StartDate  string `query:"start_date" doc:"Inclusive lower bound on the business date, YYYY-MM-DD"`
	EndDate    string `query:"end_date" doc:"Inclusive upper bound on the business date, YYYY-MM-DD"`
	CategoryID string `query:"category_id" doc:"Category UUID"`
	Type       string `query:"type" doc:"income or expense; other values are ignored"`
}

type Totals struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
	Count    int    `json:"count"`
}

type TypeTotal struct {
	Total   string `json:"total"`
	Count   int    `json:"count"`
	Average string `json:"average"`
}

type TypeTotals struct {
	Income  TypeTotal `json:"income"`
	Expense TypeTotal `json:"expense"`
}

type ReportBody struct {
	Transactions   []common.Transaction   `json:"transactions" doc:"Filtered transactions, most recent first"`
	Totals         Totals                 `json:"totals"`
	CategoryTotals []common.CategoryTotal `json:"categoryTotals" doc:"Totals per category, largest first"`
	TypeTotals     TypeTotals             `json:"typeTotals"`
	Period         string                 `json:"period" doc:"Human readable filter period"`
	HasData        bool                   `json:"hasData"`
}

type ReportOutput struct {
	Body ReportBody
}

// reportBuilder is the interface for building reports.
type reportBuilder interface {
	Build(ctx context.Context, ownerID uuid.UUID, filter service.ReportFilter) (*service.Report, error)
}

// Handler handles GET /v1/report.
type Handler struct {
	ReportService reportBuilder
}

func NewHandler(svc reportBuilder) *Handler {
	return &Handler{ReportService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/report",
		Summary:     "Get financial report",
		Description: "Returns filtered transactions with totals by category and type.",
		Tags:        []string{"Report"},
	}, h.handle)
}

// parseReportInput converts query parameters into a report filter.
func parseReportInput(input *ReportInput) (service.ReportFilter, error) {
	filter := service.ReportFilter{Type: input.Type}

	if input.StartDate != "" {
		start, err := common.ParseDate("start_date", input.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = omit.From(start)
	}
	if input.EndDate != "" {
		end, err := common.ParseDate("end_date", input.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = omit.From(end)
	}
	if input.CategoryID != "" {
		categoryID, err := common.ParseUUID("category_id", input.CategoryID)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = omit.From(categoryID)
	}
	return filter, nil
}

func (h *Handler) handle(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	filter, err := parseReportInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "buildReportMs")
	report, err := h.ReportService.Build(ctx, ownerID, filter)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to build report", err)
	}
	logging.AddData(ctx, "transactionCount", report.Totals.Count)

	return &ReportOutput{Body: ReportBody{
		Transactions: common.NewCategorizedTransactions(report.Transactions),
		Totals: Totals{
			Income:   report.Totals.Income.StringFixed(2),
			Expenses: report.Totals.Expenses.StringFixed(2),
			Net:      report.Totals.Net.StringFixed(2),
			Count:    report.Totals.Count,
		},
		CategoryTotals: common.NewCategoryTotals(report.CategoryTotals),
		TypeTotals: TypeTotals{
			Income:  newTypeTotal(report.TypeTotals[ledger.TransactionTypeIncome]),
			Expense: newTypeTotal(report.TypeTotals[ledger.TransactionTypeExpense]),
		},
		Period:  report.Period,
		HasData: report.HasData,
	}}, nil
}

func newTypeTotal(total service.TypeTotal) TypeTotal {
	return TypeTotal{
		Total:   total.Total.StringFixed(2),
		Count:   total.Count,
		Average: total.Average.StringFixed(2),
	}
}
