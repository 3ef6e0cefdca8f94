package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

var (
	ownerID     = uuid.Must(uuid.NewV4())
	ownerHeader = "X-Owner-ID: " + ownerID.String()
)

// mockTransactionService is a mock for the transaction service interfaces.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, owner uuid.UUID, transaction service.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, owner, transaction)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, owner, transactionID uuid.UUID, transaction service.Transaction) error {
	return m.Called(ctx, owner, transactionID, transaction).Error(0)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, owner, transactionID uuid.UUID) error {
	return m.Called(ctx, owner, transactionID).Error(0)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, owner uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error) {
	args := m.Called(ctx, owner, filter)
	transactions, _ := args.Get(0).([]ledger.Transaction)
	return transactions, args.Error(1)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewModifyTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func validBody() map[string]any {
	return map[string]any{
		"description": "Weekly shop",
		"amount":      "42.50",
		"type":        "expense",
		"date":        "2025-06-14",
	}
}

func TestParseTransactionBody(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	transaction, err := parseTransactionBody(&TransactionBody{
		CategoryID:  categoryID.String(),
		Description: "Weekly shop",
		Amount:      "42.50",
		Type:        "expense",
		Date:        "2025-06-14",
	})
	require.NoError(t, err)

	assert.Equal(t, uuid.NullUUID{UUID: categoryID, Valid: true}, transaction.CategoryID)
	assert.Equal(t, "Weekly shop", transaction.Description)
	assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, ledger.TransactionTypeExpense, transaction.Type)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func TestParseTransactionBody_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        TransactionBody
		errorString string
	}{
		{name: "bad category", body: TransactionBody{CategoryID: "food", Amount: "1", Date: "2025-06-14"}, errorString: "invalid categoryID"},
		{name: "bad amount", body: TransactionBody{Amount: "1,5", Date: "2025-06-14"}, errorString: "invalid amount"},
		{name: "bad date", body: TransactionBody{Amount: "1", Date: "2025-06-14T10:00:00Z"}, errorString: "invalid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTransactionBody(&tt.body)
			assert.ErrorContains(t, err, tt.errorString)
		})
	}
}

func TestCreateTransaction_Created(t *testing.T) {
	svc := &mockTransactionService{}
	id := uuid.Must(uuid.NewV4())
	svc.On("CreateTransaction", mock.Anything, ownerID, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Amount.Equal(decimal.RequireFromString("42.50")) && !tx.CategoryID.Valid
	})).Return(id, nil)

	resp := newTestAPI(t, svc).Post("/v1/transactions", ownerHeader, validBody())

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), id.String())
	svc.AssertExpectations(t)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	svc := &mockTransactionService{}
	svc.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).Return(nil, ledger.ErrInvalidAmount)

	body := validBody()
	body["amount"] = "-5"
	resp := newTestAPI(t, svc).Post("/v1/transactions", ownerHeader, body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestCreateTransaction_UnknownType(t *testing.T) {
	svc := &mockTransactionService{}

	body := validBody()
	body["type"] = "transfer"
	resp := newTestAPI(t, svc).Post("/v1/transactions", ownerHeader, body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_ServiceError(t *testing.T) {
	svc := &mockTransactionService{}
	svc.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).Return(nil, errors.New("database error"))

	resp := newTestAPI(t, svc).Post("/v1/transactions", ownerHeader, validBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestUpdateTransaction(t *testing.T) {
	svc := &mockTransactionService{}
	id := uuid.Must(uuid.NewV4())
	svc.On("UpdateTransaction", mock.Anything, ownerID, id, mock.Anything).Return(nil)

	resp := newTestAPI(t, svc).Put("/v1/transactions/"+id.String(), ownerHeader, validBody())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestUpdateTransaction_OtherOwner(t *testing.T) {
	svc := &mockTransactionService{}
	id := uuid.Must(uuid.NewV4())
	svc.On("UpdateTransaction", mock.Anything, ownerID, id, mock.Anything).Return(ledger.ErrOwnershipViolation)

	resp := newTestAPI(t, svc).Put("/v1/transactions/"+id.String(), ownerHeader, validBody())

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeleteTransaction(t *testing.T) {
	svc := &mockTransactionService{}
	id := uuid.Must(uuid.NewV4())
	svc.On("DeleteTransaction", mock.Anything, ownerID, id).Return(nil)

	resp := newTestAPI(t, svc).Delete("/v1/transactions/"+id.String(), ownerHeader)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	svc := &mockTransactionService{}
	id := uuid.Must(uuid.NewV4())
	svc.On("DeleteTransaction", mock.Anything, ownerID, id).Return(ledger.ErrTransactionNotFound)

	resp := newTestAPI(t, svc).Delete("/v1/transactions/"+id.String(), ownerHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListTransactions(t *testing.T) {
	svc := &mockTransactionService{}
	categoryID := uuid.Must(uuid.NewV4())
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var transactions []ledger.Transaction
	for i := 0; i < 3; i++ {
		transactions = append(transactions, ledger.Transaction{
			ID:         uuid.Must(uuid.NewV4()),
			OwnerID:    ownerID,
			CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true},
			Amount:     decimal.NewFromInt(int64(10 * (i + 1))),
			Type:       ledger.TransactionTypeExpense,
			Date:       day.AddDate(0, 0, i),
			CreatedAt:  day.AddDate(0, 0, i),
		})
	}
	svc.On("ListTransactions", mock.Anything, ownerID, ledger.Filter{
		StartDate:  omit.From(day),
		CategoryID: omit.From(categoryID),
		Type:       omit.From(ledger.TransactionTypeExpense),
	}).Return(transactions, nil)

	resp := newTestAPI(t, svc).Get(
		"/v1/transactions?start_date=2025-06-01&type=expense&limit=2&category_id="+categoryID.String(),
		ownerHeader,
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Transactions []map[string]any `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "2025-06-03", body.Transactions[0]["date"])
	assert.Equal(t, "30.00", body.Transactions[0]["amount"])
}

func TestListTransactions_InvalidDate(t *testing.T) {
	svc := &mockTransactionService{}

	resp := newTestAPI(t, svc).Get("/v1/transactions?end_date=yesterday", ownerHeader)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}
