package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/apiclient"
)

type LoginBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Account name"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Account password"`
}

type LoginInput struct {
	Body LoginBody
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	Auth authFlows
}

func NewLoginHandler(flows authFlows) *LoginHandler {
	return &LoginHandler{Auth: flows}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Logs in against the remote API and persists the returned session for this browser.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	view, err := viewSession(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.Auth.SignIn(ctx, view.Auth, input.Body.Username, input.Body.Password); err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, apiclient.DetailOr(err, "Invalid credentials"))
	}

	out := homeRedirect(view.Auth.IsAuthenticated())
	return &out, nil
}
