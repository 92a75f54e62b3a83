package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/domain"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

type webhookSubscriptionsInput struct {
	AppID string `json:"appId" jsonschema:"HubSpot developer app ID whose subscriptions to list"`
}

type emptyInput struct{}

type connectionStatus struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

func registerAdmin(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_owners",
		"List the owners (users) in the HubSpot account.", c.ListOwners)
	addGetTool(s, "hubspot_get_owner",
		"Get a single owner by ID.", c.GetOwner)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_list_webhook_subscriptions",
		Description: "List the webhook subscriptions configured for a developer app.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in webhookSubscriptionsInput) (*mcp.CallToolResult, any, error) {
		subs, err := c.ListWebhookSubscriptions(ctx, in.AppID)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(subs), nil, nil
	})

	// The connection test is the one tool that never reports IsError: its
	// whole point is telling the caller whether the credentials work.
	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_connection_test",
		Description: "Check whether the configured HubSpot credentials are valid.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, any, error) {
		status := testConnection(ctx, c)
		return jsonResult(status), nil, nil
	})
}

func testConnection(ctx context.Context, c *hubspot.Client) connectionStatus {
	_, err := c.ListOwners(ctx, domain.ListOptions{Limit: 1})
	if err != nil {
		return connectionStatus{Connected: false, Message: errorMessage(err)}
	}
	return connectionStatus{Connected: true, Message: "Connected to HubSpot."}
}
