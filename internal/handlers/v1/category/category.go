package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" minLength:"1" maxLength:"100" doc:"Category name"`
	Type string `json:"type" enum:"income,expense" doc:"Transaction type the category groups"`
}

type CreateCategoryInput struct {
	common.OwnerInput
	Body CreateCategoryBody
}

type CreateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   common.Category
}

type ListCategoriesInput struct {
	common.OwnerInput
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []common.Category `json:"categories" doc:"Categories ordered by name"`
	}
}

type DeleteCategoryInput struct {
	common.OwnerInput
	CategoryID string `path:"categoryID" doc:"Category UUID"`
}

type DeleteCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// categoryService is the interface for category operations.
type categoryService interface {
	CreateCategory(ctx context.Context, ownerID uuid.UUID, name string, txType ledger.TransactionType) (uuid.UUID, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error
	ListCategories(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error)
}

// Handler handles /v1/categories.
type Handler struct {
	CategoryService categoryService
}

func NewHandler(svc categoryService) *Handler {
	return &Handler{CategoryService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handleCreate)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{categoryID}",
		Summary:       "Delete category",
		Description:   "Removes a category that no transaction references.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

func (h *Handler) handleCreate(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	txType := ledger.TransactionType(input.Body.Type)

	id, err := h.CategoryService.CreateCategory(ctx, ownerID, input.Body.Name, txType)
	if err != nil {
		return nil, common.Error("failed to create category", err)
	}
	logging.AddData(ctx, "categoryID", id.String())

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body: common.NewCategory(ledger.Category{
			ID:      id,
			OwnerID: ownerID,
			Name:    input.Body.Name,
			Type:    txType,
		}),
	}, nil
}

func (h *Handler) handleList(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, common.Error("failed to list categories", err)
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]common.Category, len(categories))
	for i, category := range categories {
		out.Body.Categories[i] = common.NewCategory(category)
	}
	return out, nil
}

func (h *Handler) handleDelete(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseUUID("categoryID", input.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.DeleteCategory(ctx, ownerID, categoryID); err != nil {
		return nil, common.Error("failed to delete category", err)
	}
	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
