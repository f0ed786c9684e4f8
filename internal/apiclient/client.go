package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/logging"
)

const maxErrorBodyBytes = 64 << 10

var (
	// ErrNoCredential is returned when a protected call is attempted without a session.
	ErrNoCredential = errors.New("no session credential")
	// ErrNoSessionCookie is returned when a successful login sets no cookie.
	ErrNoSessionCookie = errors.New("login response carried no session cookie")
)

// Credential is the opaque session attached to every protected request.
// The client never inspects it; the remote API decides whether it is valid.
type Credential struct {
	Session string
}

func (c Credential) IsZero() bool {
	return c.Session == ""
}

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("remote API returned %d", e.StatusCode)
	}
	return fmt.Sprintf("remote API returned %d: %s", e.StatusCode, e.Detail)
}

// DetailOr returns the server-provided detail of err, or fallback when there is none.
func DetailOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// Client talks to the remote transactions API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse API base URL: %w", err)
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req with cred attached, decodes a 2xx body into out when out is non-nil,
// and converts any other status into an *APIError.
func (c *Client) do(req *http.Request, cred *Credential, out interface{}) (*http.Response, error) {
	if cred != nil {
		if cred.IsZero() {
			return nil, ErrNoCredential
		}
		req.Header.Set("Cookie", cred.Session)
	}

	if logData := logging.GetLogData(req.Context()); logData != nil {
		defer logData.AddToExistingTiming("apiMs")()
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"status":     resp.StatusCode,
		"durationMs": time.Since(start).Milliseconds(),
	}).Debug("APIClient.do.response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
		}
	}
	return resp, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		apiErr.Detail = detail
	} else {
		apiErr.Detail = string(body.Detail)
	}
	return apiErr
}
