package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

type associationInput struct {
	FromType string `json:"fromType" jsonschema:"object family of the source, e.g. deals"`
	FromID   string `json:"fromId" jsonschema:"ID of the source object"`
	ToType   string `json:"toType" jsonschema:"object family of the target, e.g. contacts"`
	ToID     string `json:"toId" jsonschema:"ID of the target object"`
	TypeID   int    `json:"typeId" jsonschema:"numeric HubSpot association type ID, e.g. 3 for deal to contact"`
}

type listAssociationsInput struct {
	FromType string `json:"fromType" jsonschema:"object family of the source, e.g. deals"`
	FromID   string `json:"fromId" jsonschema:"ID of the source object"`
	ToType   string `json:"toType" jsonschema:"object family of the targets, e.g. contacts"`
}

type associationLabelsInput struct {
	FromType string `json:"fromType" jsonschema:"source object family"`
	ToType   string `json:"toType" jsonschema:"target object family"`
}

func registerAssociations(s *mcp.Server, c *hubspot.Client) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_create_association",
		Description: "Associate two CRM objects using a numeric association type ID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in associationInput) (*mcp.CallToolResult, any, error) {
		if err := c.Associate(ctx, in.FromType, in.FromID, in.ToType, in.ToID, in.TypeID); err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Associated %s %s with %s %s.", in.FromType, in.FromID, in.ToType, in.ToID)), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_delete_association",
		Description: "Remove an association between two CRM objects.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in associationInput) (*mcp.CallToolResult, any, error) {
		if err := c.Disassociate(ctx, in.FromType, in.FromID, in.ToType, in.ToID, in.TypeID); err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Removed association between %s %s and %s %s.", in.FromType, in.FromID, in.ToType, in.ToID)), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_list_associations",
		Description: "List the objects of a given family associated with a CRM object.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in listAssociationsInput) (*mcp.CallToolResult, any, error) {
		targets, err := c.ListAssociations(ctx, in.FromType, in.FromID, in.ToType)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(targets), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_list_association_labels",
		Description: "List the association labels defined between two object families.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in associationLabelsInput) (*mcp.CallToolResult, any, error) {
		labels, err := c.AssociationLabels(ctx, in.FromType, in.ToType)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(labels), nil, nil
	})
}
