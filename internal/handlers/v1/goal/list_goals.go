package goal

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type ListGoalsInput struct {
	common.OwnerInput
	Status     string `query:"status" enum:"active,completed,cancelled" doc:"Only goals with this status"`
	CategoryID string `query:"category_id" doc:"Only goals on this category"`
	Refresh    bool   `query:"refresh" doc:"Recompute every goal before listing"`
}

type ListGoalsOutput struct {
	Body struct {
		Goals []common.Goal `json:"goals" doc:"Goals ordered by deadline"`
	}
}

// GoalDetails is the response body for a single goal.
type GoalDetails struct {
	Goal               common.Goal          `json:"goal"`
	ProgressPercentage string               `json:"progressPercentage" doc:"Progress towards the target, capped at 100"`
	DaysRemaining      int                  `json:"daysRemaining" doc:"Whole days until the deadline, never negative"`
	Urgency            string               `json:"urgency" enum:"overdue,critical,high,medium,low"`
	TimeRemaining      string               `json:"timeRemaining" doc:"Human readable distance to the deadline"`
	Transactions       []common.Transaction `json:"transactions" doc:"Transactions counting towards the goal"`
}

type GetGoalOutput struct {
	Body GoalDetails
}

// goalReader is the interface for reading goals.
type goalReader interface {
	List(ctx context.Context, ownerID uuid.UUID, filter *sqlconfig.GoalFilter) ([]ledger.Goal, error)
	RecomputeAll(ctx context.Context, ownerID uuid.UUID) ([]ledger.Goal, error)
	Details(ctx context.Context, ownerID, goalID uuid.UUID) (*service.GoalDetails, error)
}

// ListGoalsHandler handles GET /v1/goals and GET /v1/goals/{goalID}.
type ListGoalsHandler struct {
	GoalService goalReader
}

func NewListGoalsHandler(svc goalReader) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List goals",
		Description: "Returns the owner's goals ordered by deadline.",
		Tags:        []string{"Goals"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goals/{goalID}",
		Summary:     "Get goal",
		Description: "Recomputes a goal and returns it with progress details.",
		Tags:        []string{"Goals"},
	}, h.handleGet)
}

func (h *ListGoalsHandler) handleList(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}

	filter := &sqlconfig.GoalFilter{}
	if input.Status != "" {
		filter.Status = omit.From(ledger.GoalStatus(input.Status))
	}
	if input.CategoryID != "" {
		categoryID, err := common.ParseUUID("category_id", input.CategoryID)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = omit.From(categoryID)
	}

	if input.Refresh {
		stopTimer := logging.StartTiming(ctx, "recomputeAllMs")
		_, err = h.GoalService.RecomputeAll(ctx, ownerID)
		stopTimer()
		if err != nil {
			logging.AddData(ctx, "refreshError", err.Error())
		}
	}

	goals, err := h.GoalService.List(ctx, ownerID, filter)
	if err != nil {
		return nil, common.Error("failed to list goals", err)
	}
	logging.AddData(ctx, "goalCount", len(goals))

	out := &ListGoalsOutput{}
	out.Body.Goals = common.NewGoals(goals)
	return out, nil
}

func (h *ListGoalsHandler) handleGet(ctx context.Context, input *GoalIDInput) (*GetGoalOutput, error) {
	ownerID, err := input.Owner()
	if err != nil {
		return nil, err
	}
	goalID, err := common.ParseUUID("goalID", input.GoalID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "goalDetailsMs")
	details, err := h.GoalService.Details(ctx, ownerID, goalID)
	stopTimer()
	if err != nil {
		return nil, common.Error("failed to load goal", err)
	}

	transactions := make([]common.Transaction, len(details.Transactions))
	for i, tx := range details.Transactions {
		transactions[i] = common.NewTransaction(tx, nil)
	}
	return &GetGoalOutput{Body: GoalDetails{
		Goal:               common.NewGoal(details.Goal),
		ProgressPercentage: details.ProgressPercentage.StringFixed(2),
		DaysRemaining:      details.DaysRemaining,
		Urgency:            string(details.Urgency),
		TimeRemaining:      details.TimeRemaining,
		Transactions:       transactions,
	}}, nil
}
