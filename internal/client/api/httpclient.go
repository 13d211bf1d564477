package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pushkard/userconsole/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient implements Client over JSON/HTTP against {base}/auth/.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// NewHTTPClient builds a client for the service reachable at baseURL
// (without the /auth suffix, e.g. "http://localhost:8080"). The token for
// authenticated calls is read from tokens on every request.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth/",
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tokens: tokens,
		log:    log,
	}
}

// Login exchanges credentials for a bearer token. The service answers with
// the raw token string. Rejections and transport failures both surface as
// ErrAuth; a 2xx response without a token is ErrProtocol.
func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "generateToken", creds)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return "", fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: login response carried no token", ErrProtocol)
	}
	return token, nil
}

// Logout invalidates the token server-side. Callers clear local session
// state no matter what this returns.
func (c *HTTPClient) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "logout", struct{}{})
	if err != nil {
		return err
	}
	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return c.statusError(resp)
	}
	return nil
}

// ListUsers fetches one zero-based page of the directory.
func (c *HTTPClient) ListUsers(ctx context.Context, page, size int) (*Page, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "users", nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	req.URL.RawQuery = q.Encode()

	return c.fetchPage(req)
}

// QueryUsers fetches one page of users matching the filter. The filter field
// and the pagination travel in the request body.
func (c *HTTPClient) QueryUsers(ctx context.Context, query SearchQuery, page, size int) (*Page, error) {
	body := map[string]any{
		"page": page,
		"size": size,
	}
	if query.Field != "" {
		body[string(query.Field)] = query.Value
	}

	req, err := c.newRequest(ctx, http.MethodPost, "queryUsers", body)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	return c.fetchPage(req)
}

// AddUser creates an account. The endpoint itself is unauthenticated.
func (c *HTTPClient) AddUser(ctx context.Context, user NewUserRequest) (*Confirmation, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "addNewUser", user)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, c.statusError(resp)
	}

	var conf Confirmation
	if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	return &conf, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	return req, nil
}

// authorize attaches the bearer token, failing fast with ErrSession when no
// token is available. Nothing is dispatched in that case.
func (c *HTTPClient) authorize(req *http.Request) error {
	token := c.tokens.Token()
	if token == "" {
		return ErrSession
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(req.Context(), "request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"request_id", req.Header.Get(requestIDHeader),
			"error", err,
		)
		// keep the cause wrapped so callers can still see context.Canceled
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return resp, nil
}

func (c *HTTPClient) fetchPage(req *http.Request) (*Page, error) {
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, c.statusError(resp)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	return &page, nil
}

// statusError classifies a non-2xx response and keeps the server's message
// when one is recognizable.
func (c *HTTPClient) statusError(resp *http.Response) error {
	kind := ErrServer
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrAuth
	case http.StatusBadRequest:
		kind = ErrValidation
	}

	c.log.Warn(resp.Request.Context(), "request rejected",
		"method", resp.Request.Method,
		"url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"request_id", resp.Request.Header.Get(requestIDHeader),
	)

	if msg := serverMessage(resp.Body); msg != "" {
		return fmt.Errorf("%w: %s", kind, msg)
	}
	return fmt.Errorf("%w: status %d", kind, resp.StatusCode)
}

// serverMessage extracts a readable message from an error body. The service
// answers either with plain text or with a {status, userId} object.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var conf Confirmation
	if json.Unmarshal(data, &conf) == nil && conf.Status != "" {
		return conf.Status
	}
	return strings.TrimSpace(string(data))
}

func success(code int) bool {
	return code >= 200 && code < 300
}
