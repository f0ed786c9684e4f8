package route

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/routing"
	"github.com/carson-networks/budget-web/internal/service"
)

type ResolveInput struct {
	Path string `query:"path" required:"true" doc:"Navigation path to evaluate, e.g. /details"`
}

type DecisionBody struct {
	View          string `json:"view" doc:"View that will be shown"`
	Redirect      string `json:"redirect,omitempty" doc:"Set when the browser must navigate elsewhere"`
	Authenticated bool   `json:"authenticated"`
}

type ResolveOutput struct {
	Body DecisionBody
}

// Handler handles GET /v1/route, the Route Guard as seen by a client-side router.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolve-route",
		Method:      http.MethodGet,
		Path:        "/v1/route",
		Summary:     "Evaluate the route guard",
		Tags:        []string{"Navigation"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	view := service.ViewSessionFromContext(ctx)
	if view == nil {
		return nil, huma.Error500InternalServerError("no view session")
	}

	authenticated := view.Auth.IsAuthenticated()
	decision := routing.Resolve(input.Path, authenticated)
	return &ResolveOutput{Body: DecisionBody{
		View:          string(decision.View),
		Redirect:      decision.Redirect,
		Authenticated: authenticated,
	}}, nil
}
