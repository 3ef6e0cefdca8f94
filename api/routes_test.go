package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/clock"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type emptyLedger struct{}

func (emptyLedger) Transactions(context.Context, uuid.UUID, ledger.Filter) ([]ledger.Transaction, error) {
	return nil, nil
}

func (emptyLedger) Categories(context.Context, uuid.UUID) ([]ledger.Category, error) {
	return nil, nil
}

type noopProcessor struct{}

func (noopProcessor) Process(context.Context, actions.IAction) error { return nil }

func newTestRest(t *testing.T) *Rest {
	t.Helper()
	logger, _ := test.NewNullLogger()
	goals := sqlconfig.NewMockIGoalTable(t)
	goals.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]ledger.Goal{}, nil).Maybe()

	return &Rest{
		Logger:   logger,
		Port:     "0",
		Database: okPinger{},
		Service: service.NewService(service.Dependencies{
			Reader:             emptyLedger{},
			Goals:              goals,
			Processor:          noopProcessor{},
			Clock:              clock.System{},
			Logger:             logger,
			ChartMonths:        6,
			ExpiringWithinDays: 7,
		}),
		ExpiringWithinDays: 7,
	}
}

func TestHandler_RoutesRegistered(t *testing.T) {
	handler := newTestRest(t).Handler()
	owner := uuid.Must(uuid.NewV4()).String()

	for _, path := range []string{
		"/status",
		"/v1/dashboard",
		"/v1/chart",
		"/v1/chart/balance",
		"/v1/report",
		"/v1/transactions",
		"/v1/categories",
		"/v1/goals",
		"/v1/notifications/goals",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("X-Owner-ID", owner)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_OpenAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRest(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "create-goal")
	assert.Contains(t, rec.Body.String(), "/v1/transactions/{transactionID}")
}

func TestServe_StopsOnCancel(t *testing.T) {
	rest := newTestRest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, rest.Serve(ctx))
}
