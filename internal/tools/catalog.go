package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerCatalog(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_leads",
		"List leads with cursor-based pagination.", c.ListLeads)
	addGetTool(s, "hubspot_get_lead",
		"Get a single lead by ID.", c.GetLead)
	addCreateTool(s, "hubspot_create_lead",
		"Create a new lead, optionally linked to a contact.", c.CreateLead)
	addUpdateTool(s, "hubspot_update_lead",
		"Update an existing lead. Only the fields provided are changed.", c.UpdateLead)
	addDeleteTool(s, "hubspot_delete_lead",
		"Archive a lead by ID.", c.DeleteLead)
	addSearchTool(s, "hubspot_search_leads",
		"Search leads by free-text query and/or property filters.", c.SearchLeads)

	addListTool(s, "hubspot_list_products",
		"List products from the product library.", c.ListProducts)
	addGetTool(s, "hubspot_get_product",
		"Get a single product by ID.", c.GetProduct)
	addCreateTool(s, "hubspot_create_product",
		"Create a new product.", c.CreateProduct)
	addUpdateTool(s, "hubspot_update_product",
		"Update an existing product. Only the fields provided are changed.", c.UpdateProduct)
	addDeleteTool(s, "hubspot_delete_product",
		"Archive a product by ID.", c.DeleteProduct)
	addSearchTool(s, "hubspot_search_products",
		"Search products by free-text query and/or property filters.", c.SearchProducts)
}
