package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateTransactionInput struct {
	TransactionIDInput
	Body TransactionBody
}

// NoContentOutput is returned by mutations without a response body.
type NoContentOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// transactionModifier is the interface for editing and removing transactions.
type transactionModifier interface {
	UpdateTransaction(ctx context.Context, ownerID, transactionID uuid.UUID, transaction service.Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, transactionID uuid.UUID) error
}

// ModifyTransactionHandler handles PUT and DELETE /v1/transactions/{transactionID}.
type ModifyTransactionHandler struct {
	TransactionService transactionModifier
}

func NewModifyTransactionHandler(svc transactionModifier) *ModifyTransactionHandler {
	return &ModifyTransactionHandler{TransactionService: svc}
}

func (h *ModifyTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transactions/{transactionID}",
		Summary:       "Update transaction",
		Description:   "Replaces a transaction and resynchronizes the goals on its old and new category.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{transactionID}",
		Summary:       "Delete transaction",
		Description:   "Removes a transaction and resynchronizes the affected goals.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

func (h *ModifyTransactionHandler) handleUpdate(ctx context.Context, input *UpdateTransactionInput) (*NoContentOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	transactionID, err := common.ParseUUID("transactionID", input.TransactionID)
	if err != nil {
		return nil, err
	}
	transaction, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "updateTransactionMs")
	err = h.TransactionService.UpdateTransaction(ctx, ownerID, transactionID, transaction)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to update transaction", err)
	}

	return &NoContentOutput{Status: http.StatusNoContent}, nil
}

func (h *ModifyTransactionHandler) handleDelete(ctx context.Context, input *TransactionIDInput) (*NoContentOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	transactionID, err := common.ParseUUID("transactionID", input.TransactionID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "deleteTransactionMs")
	err = h.TransactionService.DeleteTransaction(ctx, ownerID, transactionID)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to delete transaction", err)
	}

	return &NoContentOutput{Status: http.StatusNoContent}, nil
}
