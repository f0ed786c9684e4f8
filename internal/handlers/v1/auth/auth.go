package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/routing"
	"github.com/carson-networks/budget-web/internal/service"
)

// authFlows is implemented by *service.AuthService.
type authFlows interface {
	SignIn(ctx context.Context, manager *service.AuthManager, username, password string) error
	SignOut(ctx context.Context, manager *service.AuthManager) error
	Register(ctx context.Context, username, password, confirmPassword string) error
}

// SessionBody reports the authentication state of the calling view session and,
// after a login, logout or registration, where the browser should navigate next.
type SessionBody struct {
	Authenticated bool   `json:"authenticated" doc:"Whether a session token is persisted"`
	Redirect      string `json:"redirect,omitempty" doc:"Navigation target after the action"`
}

type SessionOutput struct {
	Body SessionBody
}

func viewSession(ctx context.Context) (*service.ViewSession, error) {
	view := service.ViewSessionFromContext(ctx)
	if view == nil {
		return nil, huma.Error500InternalServerError("no view session")
	}
	return view, nil
}

// SessionHandler handles GET /v1/auth/session.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

func (h *SessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/v1/auth/session",
		Summary:     "Authentication state",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *SessionHandler) handle(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	view, err := viewSession(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Body: SessionBody{Authenticated: view.Auth.IsAuthenticated()}}, nil
}

// homeRedirect sends the browser home, or wherever the guard sends it from there.
func homeRedirect(authenticated bool) SessionOutput {
	target := string(routing.ViewHome)
	if decision := routing.Resolve(target, authenticated); !decision.Allowed() {
		target = decision.Redirect
	}
	return SessionOutput{Body: SessionBody{Authenticated: authenticated, Redirect: target}}
}
