package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CategoryService handles category business logic.
type CategoryService struct {
	processor Processor
	reader    ledger.Reader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(processor Processor, reader ledger.Reader) *CategoryService {
	return &CategoryService{processor: processor, reader: reader}
}

func (s *CategoryService) CreateCategory(ctx context.Context, ownerID uuid.UUID, name string, txType ledger.TransactionType) (uuid.UUID, error) {
	action := &actions.CreateCategory{
		OwnerID: ownerID,
		Name:    name,
		Type:    txType,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.Result, nil
}

// DeleteCategory removes a category. Categories still referenced by
// transactions are refused with ledger.ErrCategoryInUse.
func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteCategory{
		OwnerID:    ownerID,
		CategoryID: categoryID,
	})
}

func (s *CategoryService) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error) {
	return s.reader.Categories(ctx, ownerID)
}
