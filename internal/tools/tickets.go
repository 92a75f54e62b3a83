package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerTickets(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_tickets",
		"List support tickets with cursor-based pagination.", c.ListTickets)
	addGetTool(s, "hubspot_get_ticket",
		"Get a single ticket by ID.", c.GetTicket)
	addCreateTool(s, "hubspot_create_ticket",
		"Create a new ticket, optionally associated with a contact, company, or deal.", c.CreateTicket)
	addUpdateTool(s, "hubspot_update_ticket",
		"Update an existing ticket. Only the fields provided are changed.", c.UpdateTicket)
	addDeleteTool(s, "hubspot_delete_ticket",
		"Archive a ticket by ID.", c.DeleteTicket)
	addSearchTool(s, "hubspot_search_tickets",
		"Search tickets by free-text query and/or property filters.", c.SearchTickets)
}
