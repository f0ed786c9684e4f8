package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/service"
)

type RegisterBody struct {
	Username        string `json:"username" required:"true" minLength:"1" doc:"Account name"`
	Password        string `json:"password" required:"true" minLength:"1" doc:"Account password"`
	ConfirmPassword string `json:"confirmPassword" required:"true" doc:"Must equal password"`
}

type RegisterInput struct {
	Body RegisterBody
}

// RegisterHandler handles POST /v1/auth/register. Registering does not log in.
type RegisterHandler struct {
	Auth authFlows
}

func NewRegisterHandler(flows authFlows) *RegisterHandler {
	return &RegisterHandler{Auth: flows}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/v1/auth/register",
		Summary:     "Register",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*SessionOutput, error) {
	view, err := viewSession(ctx)
	if err != nil {
		return nil, err
	}

	err = h.Auth.Register(ctx, input.Body.Username, input.Body.Password, input.Body.ConfirmPassword)
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return nil, huma.NewError(http.StatusBadRequest, validationErr.Message)
	case err != nil:
		var apiErr *apiclient.APIError
		status := http.StatusBadGateway
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		return nil, huma.NewError(status, apiclient.DetailOr(err, "Registration failed"))
	}

	out := homeRedirect(view.Auth.IsAuthenticated())
	return &out, nil
}
