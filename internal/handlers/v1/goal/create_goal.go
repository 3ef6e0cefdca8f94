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

type CreateGoalInput struct {
	common.OwnerInput
	Body GoalBody
}

// goalCreator is the interface for creating goals.
type goalCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, input service.GoalInput) (ledger.Goal, error)
}

// CreateGoalHandler handles POST /v1/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goals",
		Summary:       "Create goal",
		Description:   "Creates a goal and derives its progress from the ledger.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*GoalOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	goalInput, err := parseGoalBody(&input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "createGoalMs")
	goal, err := h.GoalService.Create(ctx, ownerID, goalInput)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to create goal", err)
	}
	logging.AddData(ctx, "goalID", goal.ID.String())

	return &GoalOutput{Status: http.StatusCreated, Body: common.NewGoal(goal)}, nil
}
