package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerContacts(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_contacts",
		"List contacts with cursor-based pagination.", c.ListContacts)
	addGetTool(s, "hubspot_get_contact",
		"Get a single contact by ID.", c.GetContact)
	addCreateTool(s, "hubspot_create_contact",
		"Create a new contact.", c.CreateContact)
	addUpdateTool(s, "hubspot_update_contact",
		"Update an existing contact. Only the fields provided are changed.", c.UpdateContact)
	addDeleteTool(s, "hubspot_delete_contact",
		"Archive a contact by ID.", c.DeleteContact)
	addSearchTool(s, "hubspot_search_contacts",
		"Search contacts by free-text query and/or property filters.", c.SearchContacts)
}
