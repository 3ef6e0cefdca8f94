package chart

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ChartInput struct {
	common.OwnerInput
	Months int `query:"months" minimum:"0" maximum:"120" doc:"Number of months ending with the current one, server default when 0"`
}

// Point is one month of the chart.
type Point struct {
	Month    string `json:"month" doc:"YYYY-MM"`
	Label    string `json:"label" doc:"Mon/YYYY"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
	Balance  string `json:"balance" doc:"Running balance from the oldest month shown"`
}

type ChartBody struct {
	Labels   []string `json:"labels"`
	Income   []string `json:"income"`
	Expenses []string `json:"expenses"`
	Balance  []string `json:"balance"`
	Points   []Point  `json:"points"`
}

type ChartOutput struct {
	Body ChartBody
}

type BalanceBody struct {
	Labels  []string `json:"labels"`
	Balance []string `json:"balance"`
}

type BalanceOutput struct {
	Body BalanceBody
}

// chartBuilder is the interface for building chart series.
type chartBuilder interface {
	Build(ctx context.Context, ownerID uuid.UUID, months int) (*service.Chart, error)
	BalanceSeries(ctx context.Context, ownerID uuid.UUID, months int) (*service.BalanceSeries, error)
}

// Handler handles GET /v1/chart and GET /v1/chart/balance.
type Handler struct {
	ChartService chartBuilder
}

func NewHandler(svc chartBuilder) *Handler {
	return &Handler{ChartService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-chart",
		Method:      http.MethodGet,
		Path:        "/v1/chart",
		Summary:     "Get monthly chart",
		Description: "Returns monthly income, expenses and running balance, oldest month first.",
		Tags:        []string{"Chart"},
	}, h.handleChart)

	huma.Register(api, huma.Operation{
		OperationID: "get-balance-chart",
		Method:      http.MethodGet,
		Path:        "/v1/chart/balance",
		Summary:     "Get balance chart",
		Description: "Returns only the running balance series.",
		Tags:        []string{"Chart"},
	}, h.handleBalance)
}

func (h *Handler) handleChart(ctx context.Context, input *ChartInput) (*ChartOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "buildChartMs")
	chart, err := h.ChartService.Build(ctx, ownerID, input.Months)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to build chart", err)
	}

	body := ChartBody{
		Labels:   chart.Labels,
		Income:   decimals(chart.Income),
		Expenses: decimals(chart.Expenses),
		Balance:  decimals(chart.Balance),
		Points:   make([]Point, len(chart.Points)),
	}
	for i, p := range chart.Points {
		body.Points[i] = Point{
			Month:    p.Month,
			Label:    p.Label,
			Income:   p.Income.StringFixed(2),
			Expenses: p.Expenses.StringFixed(2),
			Net:      p.Net.StringFixed(2),
			Balance:  p.Balance.StringFixed(2),
		}
	}
	return &ChartOutput{Body: body}, nil
}

func (h *Handler) handleBalance(ctx context.Context, input *ChartInput) (*BalanceOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}

	series, err := h.ChartService.BalanceSeries(ctx, ownerID, input.Months)
	if err != nil {
		return nil, common.Error("failed to build balance chart", err)
	}
	return &BalanceOutput{Body: BalanceBody{
		Labels:  series.Labels,
		Balance: decimals(series.Balance),
	}}, nil
}

func decimals(values []decimal.Decimal) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = v.StringFixed(2)
	}
	return result
}
