package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	common.OwnerInput
	StartDate  string `query:"start_date" doc:"Inclusive lower bound on the business date, YYYY-MM-DD"`
	EndDate    string `query:"end_date" doc:"Inclusive upper bound on the business date, YYYY-MM-DD"`
	CategoryID string `query:"category_id" doc:"Category UUID"`
	Type       string `query:"type" enum:"income,expense" doc:"Transaction type"`
	Limit      int    `query:"limit" minimum:"0" maximum:"1000" doc:"Maximum number of transactions, 0 for all"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body struct {
		Transactions []common.Transaction `json:"transactions" doc:"Transactions, most recent first"`
	}
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ledger.Filter) ([]ledger.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the owner's transactions ordered by date then creation time, most recent first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput converts query parameters into a ledger filter.
func parseListTransactionsInput(input *ListTransactionsInput) (ledger.Filter, error) {
	var filter ledger.Filter
	if input.StartDate != "" {
		start, err := common.ParseDate("start_date", input.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = omit.From(start)
	}
	if input.EndDate != "" {
		end, err := common.ParseDate("end_date", input.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = omit.From(end)
	}
	if input.CategoryID != "" {
		categoryID, err := common.ParseUUID("category_id", input.CategoryID)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = omit.From(categoryID)
	}
	if input.Type != "" {
		filter.Type = omit.From(ledger.TransactionType(input.Type))
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "listTransactionsMs")
	transactions, err := h.TransactionService.ListTransactions(ctx, ownerID, filter)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to list transactions", err)
	}
	if input.Limit > 0 {
		transactions = ledger.Recent(transactions, input.Limit)
	}
	logging.AddData(ctx, "transactionCount", len(transactions))

	out := &ListTransactionsOutput{}
	out.Body.Transactions = make([]common.Transaction, len(transactions))
	for i, tx := range transactions {
		out.Body.Transactions[i] = common.NewTransaction(tx, nil)
	}
	return out, nil
}
