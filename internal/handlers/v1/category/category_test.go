package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
)

var (
	ownerID     = uuid.Must(uuid.NewV4())
	ownerHeader = "X-Owner-ID: " + ownerID.String()
)

// mockCategoryService is a mock for categoryService.
type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, owner uuid.UUID, name string, txType ledger.TransactionType) (uuid.UUID, error) {
	args := m.Called(ctx, owner, name, txType)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, owner, categoryID uuid.UUID) error {
	return m.Called(ctx, owner, categoryID).Error(0)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, owner uuid.UUID) ([]ledger.Category, error) {
	args := m.Called(ctx, owner)
	categories, _ := args.Get(0).([]ledger.Category)
	return categories, args.Error(1)
}

func newTestAPI(t *testing.T, svc categoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestCreateCategory(t *testing.T) {
	svc := &mockCategoryService{}
	id := uuid.Must(uuid.NewV4())
	svc.On("CreateCategory", mock.Anything, ownerID, "Groceries", ledger.TransactionTypeExpense).Return(id, nil)

	resp := newTestAPI(t, svc).Post("/v1/categories", ownerHeader, map[string]any{
		"name": "Groceries",
		"type": "expense",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body common.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "expense", body.Type)
}

func TestCreateCategory_InvalidType(t *testing.T) {
	svc := &mockCategoryService{}

	resp := newTestAPI(t, svc).Post("/v1/categories", ownerHeader, map[string]any{
		"name": "Groceries",
		"type": "transfer",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListCategories(t *testing.T) {
	svc := &mockCategoryService{}
	svc.On("ListCategories", mock.Anything, ownerID).Return([]ledger.Category{
		{ID: uuid.Must(uuid.NewV4()), OwnerID: ownerID, Name: "Rent", Type: ledger.TransactionTypeExpense},
		{ID: uuid.Must(uuid.NewV4()), OwnerID: ownerID, Name: "Salary", Type: ledger.TransactionTypeIncome},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/categories", ownerHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Categories []common.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Salary", body.Categories[1].Name)
}

func TestDeleteCategory(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "in use", err: ledger.ErrCategoryInUse, status: http.StatusConflict},
		{name: "other owner", err: ledger.ErrOwnershipViolation, status: http.StatusForbidden},
		{name: "missing", err: ledger.ErrCategoryNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCategoryService{}
			categoryID := uuid.Must(uuid.NewV4())
			svc.On("DeleteCategory", mock.Anything, ownerID, categoryID).Return(tt.err)

			resp := newTestAPI(t, svc).Delete("/v1/categories/"+categoryID.String(), ownerHeader)

			assert.Equal(t, tt.status, resp.Code)
			svc.AssertExpectations(t)
		})
	}
}
