package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestErrorMessageByKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rate limit names the delay",
			err:  &hubspot.RateLimitError{RetryAfter: 30},
			want: "Retry after 30 seconds",
		},
		{
			name: "auth names the credentials",
			err:  &hubspot.AuthError{Message: "token rejected"},
			want: "Authentication failed: token rejected",
		},
		{
			name: "association reports partial success",
			err: &hubspot.AssociationError{
				ObjectType: "tickets", ObjectID: "77",
				Err: errors.New("link backend down"),
			},
			want: "The tickets with ID 77 was created",
		},
		{
			name: "api error carries the status",
			err:  &hubspot.APIError{StatusCode: 400, Message: "bad property"},
			want: "HubSpot API error (status 400): bad property",
		},
		{
			name: "anything else is generic",
			err:  errors.New("boom"),
			want: "Operation failed: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, errorMessage(tt.err), tt.want)
		})
	}
}

func TestErrResultSetsIsError(t *testing.T) {
	res := errResult(&hubspot.APIError{StatusCode: 500, Message: "down"})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "status 500")
}

func TestJSONResultRendersIndentedJSON(t *testing.T) {
	res := jsonResult(map[string]string{"id": "1"})
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), `"id": "1"`)
}

func TestBatchSizeError(t *testing.T) {
	res := batchSizeError(150)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "150")
	assert.Contains(t, textOf(t, res), "100")
}

func TestConnectionTestNeverErrors(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results": [{"id": "1", "email": "o@x.com"}]}`))
		}))
		defer srv.Close()

		c := hubspot.New(hubspot.Credentials{AccessToken: "tok", BaseURL: srv.URL})
		status := testConnection(context.Background(), c)

		assert.True(t, status.Connected)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := hubspot.New(hubspot.Credentials{AccessToken: "bad", BaseURL: srv.URL})
		status := testConnection(context.Background(), c)

		assert.False(t, status.Connected)
		assert.Contains(t, status.Message, "Authentication failed")
	})

	t.Run("no credentials at all", func(t *testing.T) {
		c := hubspot.New(hubspot.Credentials{})
		status := testConnection(context.Background(), c)

		assert.False(t, status.Connected)
		assert.NotEmpty(t, status.Message)
	})
}

func TestRegisterAllBuildsServer(t *testing.T) {
	s := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	c := hubspot.New(hubspot.Credentials{AccessToken: "tok"})

	// Registration itself must not panic or collide on tool names.
	RegisterAll(s, c)
}
