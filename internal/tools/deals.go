package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerDeals(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_deals",
		"List deals with cursor-based pagination.", c.ListDeals)
	addGetTool(s, "hubspot_get_deal",
		"Get a single deal by ID.", c.GetDeal)
	addCreateTool(s, "hubspot_create_deal",
		"Create a new deal.", c.CreateDeal)
	addUpdateTool(s, "hubspot_update_deal",
		"Update an existing deal. Only the fields provided are changed.", c.UpdateDeal)
	addDeleteTool(s, "hubspot_delete_deal",
		"Archive a deal by ID.", c.DeleteDeal)
	addSearchTool(s, "hubspot_search_deals",
		"Search deals by free-text query and/or property filters.", c.SearchDeals)
}
