// Package tools wires the HubSpot client adapter into MCP tool
// registrations: one callable per CRM operation, with typed, schema-described
// inputs. Every handler folds adapter errors into an IsError text result;
// no error ever escapes to the protocol layer.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/domain"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

// maxBatchInputs is the advisory cap enforced before calling the adapter;
// the adapter itself sends whatever it is given in one round trip.
const maxBatchInputs = 100

// RegisterAll registers every CRM tool on the server, backed by the given
// per-tenant client.
func RegisterAll(s *mcp.Server, c *hubspot.Client) {
	registerContacts(s, c)
	registerCompanies(s, c)
	registerDeals(s, c)
	registerTickets(s, c)
	registerCatalog(s, c)
	registerCommerce(s, c)
	registerEngagements(s, c)
	registerAssociations(s, c)
	registerBatch(s, c)
	registerPipelines(s, c)
	registerProperties(s, c)
	registerAdmin(s, c)
}

type idInput struct {
	ID string `json:"id" jsonschema:"ID of the object"`
}

type objectTypeInput struct {
	ObjectType string `json:"objectType" jsonschema:"object family, e.g. contacts, companies, deals, or tickets"`
}

// jsonResult renders a successful result as pretty-printed JSON text.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return textError(fmt.Sprintf("encode result: %v", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func textError(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// errResult converts an adapter error into a failure payload whose message
// names the error kind, so the caller can tell an auth problem from
// throttling from a plain API failure.
func errResult(err error) *mcp.CallToolResult {
	return textError(errorMessage(err))
}

func errorMessage(err error) string {
	var (
		authErr  *hubspot.AuthError
		rateErr  *hubspot.RateLimitError
		apiErr   *hubspot.APIError
		assocErr *hubspot.AssociationError
	)
	switch {
	case errors.As(err, &rateErr):
		return fmt.Sprintf("Rate limited by HubSpot. Retry after %d seconds.", rateErr.RetryAfter)
	case errors.As(err, &authErr):
		return fmt.Sprintf("Authentication failed: %s. Check the access token or API key.", authErr.Message)
	case errors.As(err, &assocErr):
		return fmt.Sprintf("The %s with ID %s was created, but associating it failed: %v. The object exists without that link.",
			assocErr.ObjectType, assocErr.ObjectID, assocErr.Err)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("HubSpot API error (status %d): %s", apiErr.StatusCode, apiErr.Message)
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}

// Shared registration helpers for the per-family CRUD shapes. Create and
// update handlers report association partial success explicitly: when the
// object was created but a follow-up link failed, the entity is returned
// together with a warning instead of a bare failure.

func addListTool[T any](s *mcp.Server, name, desc string, fn func(context.Context, domain.ListOptions) (*domain.Page[T], error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in domain.ListOptions) (*mcp.CallToolResult, any, error) {
			page, err := fn(ctx, in)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(page), nil, nil
		})
}

func addGetTool[T any](s *mcp.Server, name, desc string, fn func(context.Context, string) (*T, error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in idInput) (*mcp.CallToolResult, any, error) {
			obj, err := fn(ctx, in.ID)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(obj), nil, nil
		})
}

func addCreateTool[C, T any](s *mcp.Server, name, desc string, fn func(context.Context, C) (*T, error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in C) (*mcp.CallToolResult, any, error) {
			obj, err := fn(ctx, in)
			if err != nil {
				var assocErr *hubspot.AssociationError
				if errors.As(err, &assocErr) && obj != nil {
					return jsonResult(map[string]any{
						"result":  obj,
						"warning": errorMessage(err),
					}), nil, nil
				}
				return errResult(err), nil, nil
			}
			return jsonResult(obj), nil, nil
		})
}

func addUpdateTool[U, T any](s *mcp.Server, name, desc string, fn func(context.Context, string, U) (*T, error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in domain.BatchUpdateItem[U]) (*mcp.CallToolResult, any, error) {
			obj, err := fn(ctx, in.ID, in.Fields)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(obj), nil, nil
		})
}

func addDeleteTool(s *mcp.Server, name, desc string, fn func(context.Context, string) error) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in idInput) (*mcp.CallToolResult, any, error) {
			if err := fn(ctx, in.ID); err != nil {
				return errResult(err), nil, nil
			}
			return textResult(fmt.Sprintf("Deleted %s.", in.ID)), nil, nil
		})
}

func addSearchTool[T any](s *mcp.Server, name, desc string, fn func(context.Context, domain.SearchOptions) (*domain.Page[T], error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in domain.SearchOptions) (*mcp.CallToolResult, any, error) {
			page, err := fn(ctx, in)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(page), nil, nil
		})
}
