package apiclient

import (
	"context"
	"net/http"
	"strings"
)

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against POST /login/ and returns the cookies the server set,
// joined the way a browser exposes them ("name=value; name2=value2").
func (c *Client) Login(ctx context.Context, username, password string) (Credential, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "login/", nil, credentialsBody{Username: username, Password: password})
	if err != nil {
		return Credential{}, err
	}

	resp, err := c.do(req, nil, nil)
	if err != nil {
		return Credential{}, err
	}

	cookies := resp.Cookies()
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie.Value == "" || cookie.MaxAge < 0 {
			continue
		}
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	if len(pairs) == 0 {
		return Credential{}, ErrNoSessionCookie
	}

	return Credential{Session: strings.Join(pairs, "; ")}, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context, cred Credential) error {
	req, err := c.newRequest(ctx, http.MethodPost, "logout/", nil, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req, &cred, nil)
	return err
}

// Register creates a user via POST /users/.
func (c *Client) Register(ctx context.Context, username, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "users/", nil, credentialsBody{Username: username, Password: password})
	if err != nil {
		return err
	}
	_, err = c.do(req, nil, nil)
	return err
}
