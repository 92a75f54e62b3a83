package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerCompanies(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_companies",
		"List companies with cursor-based pagination.", c.ListCompanies)
	addGetTool(s, "hubspot_get_company",
		"Get a single company by ID.", c.GetCompany)
	addCreateTool(s, "hubspot_create_company",
		"Create a new company.", c.CreateCompany)
	addUpdateTool(s, "hubspot_update_company",
		"Update an existing company. Only the fields provided are changed.", c.UpdateCompany)
	addDeleteTool(s, "hubspot_delete_company",
		"Archive a company by ID.", c.DeleteCompany)
	addSearchTool(s, "hubspot_search_companies",
		"Search companies by free-text query and/or property filters.", c.SearchCompanies)
}
