package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/domain"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

type propertyNameInput struct {
	ObjectType string `json:"objectType" jsonschema:"object family the property belongs to, e.g. contacts"`
	Name       string `json:"name" jsonschema:"internal property name"`
}

type createPropertyInput struct {
	ObjectType string                `json:"objectType" jsonschema:"object family the property belongs to"`
	Property   domain.PropertyCreate `json:"property" jsonschema:"property definition"`
}

type updatePropertyInput struct {
	ObjectType string                `json:"objectType" jsonschema:"object family the property belongs to"`
	Name       string                `json:"name" jsonschema:"internal property name"`
	Fields     domain.PropertyUpdate `json:"fields" jsonschema:"fields to change"`
}

type createPropertyGroupInput struct {
	ObjectType string                     `json:"objectType" jsonschema:"object family the group belongs to"`
	Group      domain.PropertyGroupCreate `json:"group" jsonschema:"group definition"`
}

func registerProperties(s *mcp.Server, c *hubspot.Client) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_list_properties",
		Description: "List the property definitions for an object family.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in objectTypeInput) (*mcp.CallToolResult, any, error) {
		props, err := c.ListProperties(ctx, in.ObjectType)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(props), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_get_property",
		Description: "Get a single property definition by name.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in propertyNameInput) (*mcp.CallToolResult, any, error) {
		p, err := c.GetProperty(ctx, in.ObjectType, in.Name)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(p), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_create_property",
		Description: "Create a custom property definition.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createPropertyInput) (*mcp.CallToolResult, any, error) {
		p, err := c.CreateProperty(ctx, in.ObjectType, in.Property)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(p), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_update_property",
		Description: "Update a property definition. Only the fields provided are changed.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updatePropertyInput) (*mcp.CallToolResult, any, error) {
		p, err := c.UpdateProperty(ctx, in.ObjectType, in.Name, in.Fields)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(p), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_delete_property",
		Description: "Archive a custom property definition.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in propertyNameInput) (*mcp.CallToolResult, any, error) {
		if err := c.DeleteProperty(ctx, in.ObjectType, in.Name); err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Deleted property %s on %s.", in.Name, in.ObjectType)), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_list_property_groups",
		Description: "List the property groups for an object family.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in objectTypeInput) (*mcp.CallToolResult, any, error) {
		groups, err := c.ListPropertyGroups(ctx, in.ObjectType)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(groups), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_create_property_group",
		Description: "Create a property group.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createPropertyGroupInput) (*mcp.CallToolResult, any, error) {
		g, err := c.CreatePropertyGroup(ctx, in.ObjectType, in.Group)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(g), nil, nil
	})
}
