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

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	common.OwnerInput
	Body TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		ID string `json:"id" doc:"UUID of the new transaction"`
	}
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, transaction service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a transaction and resynchronizes the affected goals.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	transaction, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "createTransactionMs")
	id, err := h.TransactionService.CreateTransaction(ctx, ownerID, transaction)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to create transaction", err)
	}
	logging.AddData(ctx, "transactionID", id.String())

	out := &CreateTransactionOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
