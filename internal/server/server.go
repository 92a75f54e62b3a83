// Package server exposes the HubSpot tool set over two transports: a
// streamable HTTP endpoint with per-request credentials, and stdio with
// credentials taken from the environment.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/johnwards/hubspot-mcp/internal/config"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
	"github.com/johnwards/hubspot-mcp/internal/tools"
)

// Server builds MCP servers on demand. In HTTP mode each request gets its own
// server instance carrying that request's credentials, so one process can
// serve many HubSpot portals.
type Server struct {
	cfg     *config.Config
	log     zerolog.Logger
	version string
}

func New(cfg *config.Config, log zerolog.Logger, version string) *Server {
	return &Server{cfg: cfg, log: log, version: version}
}

func (s *Server) newMCPServer(creds hubspot.Credentials) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "hubspot-mcp",
		Version: s.version,
	}, nil)
	tools.RegisterAll(srv, hubspot.New(creds))
	return srv
}

// RunStdio serves a single session over stdin/stdout using the configured
// credentials. It blocks until the client disconnects or ctx is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	creds := hubspot.Credentials{
		AccessToken: s.cfg.AccessToken,
		APIKey:      s.cfg.APIKey,
		BaseURL:     s.cfg.BaseURL,
	}
	srv := s.newMCPServer(creds)
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// credentialsFromRequest reads per-request credentials from headers. The
// Authorization bearer token wins over X-API-Key; X-HubSpot-Base-URL lets
// tests point a session at a fake API.
func (s *Server) credentialsFromRequest(r *http.Request) hubspot.Credentials {
	creds := hubspot.Credentials{BaseURL: s.cfg.BaseURL}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		creds.AccessToken = strings.TrimPrefix(auth, "Bearer ")
	}
	creds.APIKey = r.Header.Get("X-API-Key")
	if base := r.Header.Get("X-HubSpot-Base-URL"); base != "" {
		creds.BaseURL = base
	}
	return creds
}

// requireCredentials rejects requests carrying neither a bearer token nor an
// API key before they reach the protocol handler.
func (s *Server) requireCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := s.credentialsFromRequest(r)
		if creds.AccessToken == "" && creds.APIKey == "" {
			writeJSONError(w, http.StatusUnauthorized,
				"missing credentials: set an Authorization bearer token or an X-API-Key header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Handler returns the full HTTP handler: /healthz plus the MCP endpoint at
// /mcp, wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": s.version,
		})
	})

	mcpHandler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return s.newMCPServer(s.credentialsFromRequest(r))
	}, nil)
	mux.Handle("/mcp", s.requireCredentials(mcpHandler))

	return Chain(mux,
		Recovery(s.log),
		RequestID(),
		Logging(s.log),
	)
}

// ListenAndServe runs the HTTP transport until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
