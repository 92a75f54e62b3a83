package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerCommerce(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_line_items",
		"List line items with cursor-based pagination.", c.ListLineItems)
	addGetTool(s, "hubspot_get_line_item",
		"Get a single line item by ID.", c.GetLineItem)
	addCreateTool(s, "hubspot_create_line_item",
		"Create a line item, optionally attached to a deal.", c.CreateLineItem)
	addUpdateTool(s, "hubspot_update_line_item",
		"Update an existing line item. Only the fields provided are changed.", c.UpdateLineItem)
	addDeleteTool(s, "hubspot_delete_line_item",
		"Archive a line item by ID.", c.DeleteLineItem)

	addListTool(s, "hubspot_list_quotes",
		"List quotes with cursor-based pagination.", c.ListQuotes)
	addGetTool(s, "hubspot_get_quote",
		"Get a single quote by ID.", c.GetQuote)
	addCreateTool(s, "hubspot_create_quote",
		"Create a quote, optionally attached to a deal.", c.CreateQuote)
	addUpdateTool(s, "hubspot_update_quote",
		"Update an existing quote. Only the fields provided are changed.", c.UpdateQuote)
	addDeleteTool(s, "hubspot_delete_quote",
		"Archive a quote by ID.", c.DeleteQuote)

	// Invoices and orders are read-only in the commerce API.
	addListTool(s, "hubspot_list_invoices",
		"List invoices with cursor-based pagination.", c.ListInvoices)
	addGetTool(s, "hubspot_get_invoice",
		"Get a single invoice by ID.", c.GetInvoice)
	addListTool(s, "hubspot_list_orders",
		"List orders with cursor-based pagination.", c.ListOrders)
	addGetTool(s, "hubspot_get_order",
		"Get a single order by ID.", c.GetOrder)
}
