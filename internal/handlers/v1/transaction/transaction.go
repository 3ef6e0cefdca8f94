package transaction

import (
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// TransactionBody is the request body for creating or editing a transaction.
type TransactionBody struct {
	CategoryID  string `json:"categoryID,omitempty" doc:"Category UUID; omit to leave the transaction uncategorized"`
	Description string `json:"description,omitempty" maxLength:"255" doc:"Free text description"`
	Amount      string `json:"amount" doc:"Positive decimal amount"`
	Type        string `json:"type" enum:"income,expense" doc:"Transaction type"`
	Date        string `json:"date" doc:"Business date, YYYY-MM-DD"`
}

// TransactionIDInput selects one transaction by path.
type TransactionIDInput struct {
	common.OwnerInput
	TransactionID string `path:"transactionID" doc:"Transaction UUID"`
}

// parseTransactionBody parses and validates the API input. Amount sign and
// category ownership are checked by the operator.
func parseTransactionBody(body *TransactionBody) (service.Transaction, error) {
	categoryID, err := common.ParseOptionalUUID("categoryID", body.CategoryID)
	if err != nil {
		return service.Transaction{}, err
	}
	amount, err := common.ParseAmount("amount", body.Amount)
	if err != nil {
		return service.Transaction{}, err
	}
	date, err := common.ParseDate("date", body.Date)
	if err != nil {
		return service.Transaction{}, err
	}

	return service.Transaction{
		CategoryID:  categoryID,
		Description: body.Description,
		Amount:      amount,
		Type:        ledger.TransactionType(body.Type),
		Date:        date,
	}, nil
}
