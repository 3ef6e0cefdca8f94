package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type DashboardInput struct {
	common.OwnerInput
}

// DashboardBody is the response body for the dashboard.
type DashboardBody struct {
	CurrentBalance     string                 `json:"currentBalance" doc:"Lifetime income minus expenses"`
	MonthlyIncome      string                 `json:"monthlyIncome" doc:"Income in the current calendar month"`
	MonthlyExpenses    string                 `json:"monthlyExpenses" doc:"Expenses in the current calendar month"`
	MonthlyNet         string                 `json:"monthlyNet" doc:"Monthly income minus monthly expenses"`
	CategorySummary    []common.CategoryTotal `json:"categorySummary" doc:"Current month totals per category, largest first"`
	RecentTransactions []common.Transaction   `json:"recentTransactions" doc:"The five most recent transactions"`
	HasTransactions    bool                   `json:"hasTransactions" doc:"Whether the owner has any transaction"`
}

type DashboardOutput struct {
	Body DashboardBody
}

// dashboardBuilder is the interface for building dashboards.
type dashboardBuilder interface {
	Build(ctx context.Context, ownerID uuid.UUID) (*service.Dashboard, error)
}

// Handler handles GET /v1/dashboard.
type Handler struct {
	DashboardService dashboardBuilder
}

func NewHandler(svc dashboardBuilder) *Handler {
	return &Handler{DashboardService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns the balance, current month totals, category summary and recent transactions.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "buildDashboardMs")
	dashboard, err := h.DashboardService.Build(ctx, ownerID)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to build dashboard", err)
	}
	logging.AddData(ctx, "recentCount", len(dashboard.RecentTransactions))

	return &DashboardOutput{Body: DashboardBody{
		CurrentBalance:     dashboard.CurrentBalance.StringFixed(2),
		MonthlyIncome:      dashboard.MonthlyIncome.StringFixed(2),
		MonthlyExpenses:    dashboard.MonthlyExpenses.StringFixed(2),
		MonthlyNet:         dashboard.MonthlyNet.StringFixed(2),
		CategorySummary:    common.NewCategoryTotals(dashboard.CategorySummary),
		RecentTransactions: common.NewCategorizedTransactions(dashboard.RecentTransactions),
		HasTransactions:    dashboard.HasTransactions,
	}}, nil
}
