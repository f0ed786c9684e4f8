package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct {
	Auth authFlows
}

func NewLogoutHandler(flows authFlows) *LogoutHandler {
	return &LogoutHandler{Auth: flows}
}

func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/v1/auth/logout",
		Summary:     "Log out",
		Description: "Ends the remote session. The local session is kept when the remote API rejects the logout.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	view, err := viewSession(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.Auth.SignOut(ctx, view.Auth); err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "Error logging out.", err)
	}

	out := homeRedirect(view.Auth.IsAuthenticated())
	return &out, nil
}
