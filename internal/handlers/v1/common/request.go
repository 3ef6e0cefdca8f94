package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// DateLayout is the wire format of business dates.
const DateLayout = "2006-01-02"

// OwnerInput identifies the owner every request is scoped to. Embed it in
// operation inputs.
type OwnerInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"UUID of the requesting owner"`
}

// Owner parses the owner header.
func (o *OwnerInput) Owner() (uuid.UUID, error) {
	id, err := uuid.FromString(o.OwnerID)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID header", err)
	}
	if id == uuid.Nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "X-Owner-ID must not be the nil UUID")
	}
	return id, nil
}

func ParseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseOptionalUUID treats an empty value as absent.
func ParseOptionalUUID(field, value string) (uuid.NullUUID, error) {
	if value == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := ParseUUID(field, value)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// ParseDate parses a YYYY-MM-DD business date.
func ParseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field+", expected YYYY-MM-DD", err)
	}
	return date, nil
}

func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return amount, nil
}

// Error converts an engine error into the matching HTTP error.
func Error(message string, err error) error {
	var status int
	switch {
	case errors.Is(err, ledger.ErrOwnershipViolation):
		status = http.StatusForbidden
	case errors.Is(err, ledger.ErrGoalNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrCategoryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrCategoryInUse):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidTarget),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrCategoryTypeMismatch):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}
	return huma.NewError(status, message, err)
}
