package hubspot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// newTestClient points a client with a valid token at the given handler.
func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Credentials{AccessToken: "test-token", BaseURL: srv.URL})
}

func emptyCollection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"results":[]}`))
}

func TestAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  string
	}{
		{
			name:  "access token only",
			creds: Credentials{AccessToken: "tok"},
			want:  "Bearer tok",
		},
		{
			name:  "api key only",
			creds: Credentials{APIKey: "key"},
			want:  "Bearer key",
		},
		{
			name:  "access token wins over api key",
			creds: Credentials{AccessToken: "tok", APIKey: "key"},
			want:  "Bearer tok",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				emptyCollection(w, r)
			}))
			defer srv.Close()

			tt.creds.BaseURL = srv.URL
			c := New(tt.creds)
			_, err := c.ListContacts(context.Background(), domain.ListOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// countingTransport fails the test if any request reaches the network.
type countingTransport struct{ calls int }

func (ct *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	ct.calls++
	return nil, http.ErrHandlerTimeout
}

func TestNoCredentialsFailsBeforeIO(t *testing.T) {
	ct := &countingTransport{}
	c := New(Credentials{}, WithHTTPClient(&http.Client{Transport: ct}))

	_, err := c.ListContacts(context.Background(), domain.ListOptions{})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 0, ct.calls, "no request should be issued without credentials")
}

func TestRateLimitError(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		want       int
	}{
		{"explicit header", "30", 30},
		{"missing header", "", 60},
		{"malformed header", "soon", 60},
		{"negative header", "-5", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			})

			_, err := c.GetContact(context.Background(), "1")

			var rateErr *RateLimitError
			require.ErrorAs(t, err, &rateErr)
			assert.Equal(t, tt.want, rateErr.RetryAfter)
		})
	}
}

func TestAuthErrorStatuses(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := c.GetContact(context.Background(), "1")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr, "status %d", status)
	}
}

func TestAPIErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", 400, `{"status":"error","message":"Property foo does not exist"}`, "Property foo does not exist"},
		{"error field", 400, `{"error":"bad input"}`, "bad input"},
		{"non-json body", 500, "<html>oops</html>", "API error: 500"},
		{"empty body", 502, "", "API error: 502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.GetContact(context.Background(), "1")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestMalformedSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	})

	_, err := c.GetContact(context.Background(), "1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "decode response")
}

func TestNoContentResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteContact(context.Background(), "1"))
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(9000000000), "9000000000"},
		{"float64", 19.99, "19.99"},
		{"float64 whole", 20.0, "20"},
		{"time", ts, "2025-06-01T12:30:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}
