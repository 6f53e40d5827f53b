package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenStore is the session state the client reads and mutates. Reads are
// synchronous; mutation happens only through the refresh flow here and the
// login/logout flows in the handlers.
type TokenStore interface {
	AccessToken() string
	RefreshToken() string
	UpdateAccessToken(token string)
	Logout()
}

// Client is the authenticated HTTP client for the REST backend. It attaches
// the current access token as a bearer credential to every outbound request
// and, on an unauthorized response, performs exactly one
// refresh-and-retry cycle per original request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenStore
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, tokens TokenStore) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a JSON round-trip against the backend. in is marshalled as the
// request body when non-nil; the response body is decoded into out when
// out is non-nil. Backend errors surface as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body []byte
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
		contentType = "application/json"
	}
	return c.roundTrip(ctx, method, path, query, body, contentType, out)
}

// roundTrip sends the request once and, on a 401 that has not been retried,
// runs the token refresh flow and replays the request with the new token.
// The request body is held as bytes so the replay is exact.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, out any) error {
	resp, err := c.send(ctx, method, path, query, body, contentType, c.tokens.AccessToken())
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		origErr := readError(resp)

		refresh := c.tokens.RefreshToken()
		if refresh == "" {
			c.tokens.Logout()
			return origErr
		}

		token, err := c.refreshAccessToken(ctx, refresh)
		if err != nil {
			c.tokens.Logout()
			return err
		}
		c.tokens.UpdateAccessToken(token)
		slog.Info("access token refreshed", "path", path)

		resp, err = c.send(ctx, method, path, query, body, contentType, token)
		if err != nil {
			return err
		}
		// A second unauthorized response is not retried again.
	}

	return decodeResponse(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body []byte, contentType, token string) (*http.Response, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// refreshTokenResponse mirrors the refresh endpoint's bare payload.
type refreshTokenResponse struct {
	Token string `json:"token"`
}

// refreshAccessToken exchanges the refresh token for a new access token.
// The call is unauthenticated on purpose: the expired access token must not
// ride along.
func (c *Client) refreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(map[string]string{"token": refreshToken})
	if err != nil {
		return "", err
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh-token", nil, body, "application/json", "")
	if err != nil {
		return "", err
	}

	var out refreshTokenResponse
	if err := decodeResponse(resp, &out); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if out.Token == "" {
		return "", &APIError{StatusCode: http.StatusUnauthorized, Message: "refresh returned an empty token"}
	}
	return out.Token, nil
}

// decodeResponse drains the response, mapping non-2xx statuses to *APIError
// and decoding successful bodies into out when requested.
func decodeResponse(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, resp.Body)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readError consumes an error response body and closes it.
func readError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()
	return apiError(resp.StatusCode, resp.Body)
}

func apiError(status int, body io.Reader) error {
	raw, _ := io.ReadAll(io.LimitReader(body, 1<<16))

	var env struct {
		StatusCode int    `json:"status_code"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: status, Message: env.Message}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}
