package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type StatusBody struct {
	Status string `json:"status" example:"ok" doc:"Always ok while the server is up"`
}

type StatusOutput struct {
	Body StatusBody
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/v1/status",
		Summary:     "Liveness check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusBody{Status: "ok"}}, nil
}
