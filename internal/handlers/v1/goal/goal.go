package goal

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GoalBody is the request body for creating or editing a goal.
type GoalBody struct {
	Name         string `json:"name" minLength:"1" maxLength:"255" doc:"Goal name"`
	CategoryID   string `json:"categoryID,omitempty" doc:"Category UUID; omit for a goal tracking the whole ledger"`
	TargetAmount string `json:"targetAmount" doc:"Positive decimal target"`
	Deadline     string `json:"deadline" doc:"Deadline, YYYY-MM-DD"`
}

// GoalIDInput selects one goal by path.
type GoalIDInput struct {
	common.OwnerInput
	GoalID string `path:"goalID" doc:"Goal UUID"`
}

type GoalOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   common.Goal
}

// parseGoalBody parses and validates the API input.
func parseGoalBody(body *GoalBody) (service.GoalInput, error) {
	categoryID, err := common.ParseOptionalUUID("categoryID", body.CategoryID)
	if err != nil {
		return service.GoalInput{}, err
	}
	target, err := common.ParseAmount("targetAmount", body.TargetAmount)
	if err != nil {
		return service.GoalInput{}, err
	}
	if !ledger.ValidMoney(target) {
		return service.GoalInput{}, huma.NewError(http.StatusUnprocessableEntity, "targetAmount must be positive with at most two decimals and below 10^12")
	}
	deadline, err := common.ParseDate("deadline", body.Deadline)
	if err != nil {
		return service.GoalInput{}, err
	}

	return service.GoalInput{
		CategoryID:   categoryID,
		Name:         body.Name,
		TargetAmount: target,
		Deadline:     deadline,
	}, nil
}
