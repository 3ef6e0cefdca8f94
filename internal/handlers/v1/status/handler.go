package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// pinger checks that a dependency is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type StatusOutput struct {
	Body struct {
		Status   string `json:"status" enum:"ok,degraded" doc:"Overall health"`
		Database string `json:"database" enum:"ok,unreachable" doc:"Database health"`
	}
}

// Handler handles GET /status.
type Handler struct {
	Database pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{Database: db}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Reports whether the service and its database are reachable.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	out := &StatusOutput{}
	out.Body.Status = "ok"
	out.Body.Database = "ok"

	stopTimer := logging.StartTiming(ctx, "pingMs")
	err := h.Database.Ping(ctx)
	stopTimer()
	if err != nil {
		logging.AddData(ctx, "pingError", err.Error())
		return nil, huma.NewError(http.StatusServiceUnavailable, "database unreachable", err)
	}

	return out, nil
}
