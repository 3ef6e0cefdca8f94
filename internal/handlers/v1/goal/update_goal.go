package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateGoalInput struct {
	GoalIDInput
	Body GoalBody
}

// goalUpdater is the interface for editing and recomputing goals.
type goalUpdater interface {
	Update(ctx context.Context, ownerID, goalID uuid.UUID, input service.GoalInput) (ledger.Goal, error)
	Recompute(ctx context.Context, ownerID, goalID uuid.UUID) (ledger.Goal, error)
}

// UpdateGoalHandler handles PUT /v1/goals/{goalID} and
// POST /v1/goals/{goalID}/recompute.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPut,
		Path:        "/v1/goals/{goalID}",
		Summary:     "Update goal",
		Description: "Edits a goal and recomputes its progress.",
		Tags:        []string{"Goals"},
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID: "recompute-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goals/{goalID}/recompute",
		Summary:     "Recompute goal",
		Description: "Derives the goal's progress from the ledger and stores it.",
		Tags:        []string{"Goals"},
	}, h.handleRecompute)
}

func (h *UpdateGoalHandler) handleUpdate(ctx context.Context, input *UpdateGoalInput) (*GoalOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	goalID, err := common.ParseUUID("goalID", input.GoalID)
	if err != nil {
		return nil, err
	}
	goalInput, err := parseGoalBody(&input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "updateGoalMs")
	goal, err := h.GoalService.Update(ctx, ownerID, goalID, goalInput)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to update goal", err)
	}

	return &GoalOutput{Status: http.StatusOK, Body: common.NewGoal(goal)}, nil
}

func (h *UpdateGoalHandler) handleRecompute(ctx context.Context, input *GoalIDInput) (*GoalOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	goalID, err := common.ParseUUID("goalID", input.GoalID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "recomputeGoalMs")
	goal, err := h.GoalService.Recompute(ctx, ownerID, goalID)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to recompute goal", err)
	}
	logging.AddData(ctx, "goalStatus", goal.Status)

	return &GoalOutput{Status: http.StatusOK, Body: common.NewGoal(goal)}, nil
}
