package chart

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockChartService is a mock for chartBuilder.
type mockChartService struct {
	mock.Mock
}

func (m *mockChartService) Build(ctx context.Context, ownerID uuid.UUID, months int) (*service.Chart, error) {
	args := m.Called(ctx, ownerID, months)
	chart, _ := args.Get(0).(*service.Chart)
	return chart, args.Error(1)
}

func (m *mockChartService) BalanceSeries(ctx context.Context, ownerID uuid.UUID, months int) (*service.BalanceSeries, error) {
	args := m.Called(ctx, ownerID, months)
	series, _ := args.Get(0).(*service.BalanceSeries)
	return series, args.Error(1)
}

func newTestAPI(t *testing.T, svc chartBuilder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestChart(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	svc := &mockChartService{}
	svc.On("Build", mock.Anything, ownerID, 2).Return(&service.Chart{
		Labels:   []string{"May/2025", "Jun/2025"},
		Income:   []decimal.Decimal{decimal.NewFromInt(1000), decimal.NewFromInt(1000)},
		Expenses: []decimal.Decimal{decimal.NewFromInt(500), decimal.NewFromInt(700)},
		Balance:  []decimal.Decimal{decimal.NewFromInt(500), decimal.NewFromInt(800)},
		Points: []service.ChartPoint{
			{Month: "2025-05", Label: "May/2025", Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(500), Net: decimal.NewFromInt(500), Balance: decimal.NewFromInt(500)},
			{Month: "2025-06", Label: "Jun/2025", Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(700), Net: decimal.NewFromInt(300), Balance: decimal.NewFromInt(800)},
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/chart?months=2", "X-Owner-ID: "+ownerID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ChartBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"May/2025", "Jun/2025"}, body.Labels)
	assert.Equal(t, []string{"500.00", "800.00"}, body.Balance)
	require.Len(t, body.Points, 2)
	assert.Equal(t, "2025-06", body.Points[1].Month)
	assert.Equal(t, "300.00", body.Points[1].Net)
}

func TestChart_DefaultMonthsPassedThrough(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	svc := &mockChartService{}
	svc.On("Build", mock.Anything, ownerID, 0).Return(&service.Chart{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/chart", "X-Owner-ID: "+ownerID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestChart_MonthsOutOfRange(t *testing.T) {
	svc := &mockChartService{}

	resp := newTestAPI(t, svc).Get("/v1/chart?months=500", "X-Owner-ID: "+uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Build", mock.Anything, mock.Anything, mock.Anything)
}

func TestBalanceChart(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	svc := &mockChartService{}
	svc.On("BalanceSeries", mock.Anything, ownerID, 3).Return(&service.BalanceSeries{
		Labels:  []string{"Apr/2025", "May/2025", "Jun/2025"},
		Balance: []decimal.Decimal{decimal.NewFromInt(500), decimal.NewFromInt(800), decimal.NewFromInt(600)},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/chart/balance?months=3", "X-Owner-ID: "+ownerID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BalanceBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"500.00", "800.00", "600.00"}, body.Balance)
}
