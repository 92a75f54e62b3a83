// Package hubspot implements the client adapter between the vendor-neutral
// entity model in internal/domain and the HubSpot v3/v4 CRM REST API. One
// Client holds the credentials and base URL for a single tenant and keeps no
// other state; every operation is a thin builder around the shared request
// primitive in do.
package hubspot

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
)

// DefaultBaseURL is HubSpot's production API root.
const DefaultBaseURL = "https://api.hubapi.com"

const defaultRetryAfter = 60

// Credentials is the per-tenant authentication bundle. At least one of
// AccessToken and APIKey must be set; AccessToken wins when both are
// present. BaseURL overrides the production API root when non-empty.
type Credentials struct {
	AccessToken string
	APIKey      string
	BaseURL     string
}

// Client performs HubSpot API calls for one tenant. It is safe for
// concurrent use; all fields are set at construction and never mutated.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the given tenant credentials.
func New(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(creds.BaseURL, "/"),
		creds:      creds,
		httpClient: http.DefaultClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authorization builds the Authorization header value, preferring the access
// token over the API key. It fails before any network I/O when neither is
// configured.
func (c *Client) authorization() (string, error) {
	switch {
	case c.creds.AccessToken != "":
		return "Bearer " + c.creds.AccessToken, nil
	case c.creds.APIKey != "":
		return "Bearer " + c.creds.APIKey, nil
	default:
		return "", &AuthError{Message: "no access token or API key configured"}
	}
}

// do is the single request chokepoint. Every API call goes through it and
// gets the same response classification: 429 becomes RateLimitError, 401/403
// AuthError, any other non-2xx APIError with a best-effort message, 204
// success with no body. Anything else is decoded as JSON into out, which may
// be nil to discard the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	auth, err := c.authorization()
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", auth)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Message: fmt.Sprintf("request rejected with status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(resp.Body, resp.StatusCode)}
	case resp.StatusCode == http.StatusNoContent || out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// parseRetryAfter reads a Retry-After header value in seconds, falling back
// to the default delay when absent or malformed.
func parseRetryAfter(header string) int {
	if header == "" {
		return defaultRetryAfter
	}
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	return secs
}

// extractMessage pulls a human-readable message out of an error response
// body: a JSON "message" or "error" field when present, otherwise a generic
// string carrying the status code.
func extractMessage(body io.Reader, status int) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err == nil && len(raw) > 0 {
		var parsed struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &parsed) == nil {
			if parsed.Message != "" {
				return parsed.Message
			}
			if parsed.Error != "" {
				return parsed.Error
			}
		}
	}
	return fmt.Sprintf("API error: %d", status)
}

// FormatValue serializes a custom-field value to the wire. The conversion is
// explicit per type rather than a blind fmt.Sprint: strings pass through,
// booleans become "true"/"false", integers and floats use their shortest
// decimal form, and time.Time values are rendered as RFC 3339. Anything else
// falls back to fmt.Sprint. The round trip is lossy outbound only; reads
// keep whatever typed string the CRM returns.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
