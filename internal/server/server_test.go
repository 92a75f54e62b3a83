package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/config"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Addr:    ":0",
		BaseURL: "https://api.example.com",
	}
	return New(cfg, zerolog.Nop(), "test")
}

func TestHealthz(t *testing.T) {
	h := newTestServer().Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestMCPEndpointRequiresCredentials(t *testing.T) {
	h := newTestServer().Handler()

	rec := httptest.NewRecorder()
	rec2 := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}")))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "missing credentials")

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}"))
	req.Header.Set("X-API-Key", "some-key")
	h.ServeHTTP(rec2, req)
	assert.NotEqual(t, http.StatusUnauthorized, rec2.Code, "an API key passes the credential check")
}

func TestCredentialsFromRequest(t *testing.T) {
	s := newTestServer()

	t.Run("bearer token and base url override", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		r.Header.Set("Authorization", "Bearer tok-123")
		r.Header.Set("X-HubSpot-Base-URL", "http://localhost:9999")

		creds := s.credentialsFromRequest(r)
		assert.Equal(t, "tok-123", creds.AccessToken)
		assert.Equal(t, "http://localhost:9999", creds.BaseURL)
	})

	t.Run("api key with default base url", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		r.Header.Set("X-API-Key", "key-456")

		creds := s.credentialsFromRequest(r)
		assert.Empty(t, creds.AccessToken)
		assert.Equal(t, "key-456", creds.APIKey)
		assert.Equal(t, "https://api.example.com", creds.BaseURL)
	})

	t.Run("non-bearer authorization is ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		creds := s.credentialsFromRequest(r)
		assert.Empty(t, creds.AccessToken)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})
	h := Chain(inner, RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestRecoveryMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	h := Chain(inner, Recovery(zerolog.Nop()))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
