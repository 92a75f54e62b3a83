package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

var ticketProperties = []string{
	"subject", "content", "hs_pipeline", "hs_pipeline_stage",
	"hs_ticket_priority", "hs_ticket_category", "hubspot_owner_id",
}

var ticketsAPI = objectAPI[domain.Ticket, domain.TicketCreate, domain.TicketUpdate]{
	typeName:     "tickets",
	properties:   ticketProperties,
	encodeCreate: encodeTicketCreate,
	encodeUpdate: encodeTicketUpdate,
	decode:       decodeTicket,
}

func encodeTicketCreate(in domain.TicketCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "subject", in.Subject)
	setIf(p, "content", in.Content)
	setIf(p, "hs_pipeline", in.Pipeline)
	setIf(p, "hs_pipeline_stage", in.Stage)
	setIf(p, "hs_ticket_priority", in.Priority)
	setIf(p, "hs_ticket_category", in.Category)
	setIf(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func encodeTicketUpdate(in domain.TicketUpdate) map[string]string {
	p := make(map[string]string)
	setPtr(p, "subject", in.Subject)
	setPtr(p, "content", in.Content)
	setPtr(p, "hs_pipeline", in.Pipeline)
	setPtr(p, "hs_pipeline_stage", in.Stage)
	setPtr(p, "hs_ticket_priority", in.Priority)
	setPtr(p, "hs_ticket_category", in.Category)
	setPtr(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func decodeTicket(raw rawObject) domain.Ticket {
	p := raw.Properties
	return domain.Ticket{
		ID:           raw.ID,
		Subject:      p["subject"],
		Content:      p["content"],
		Pipeline:     p["hs_pipeline"],
		Stage:        p["hs_pipeline_stage"],
		Priority:     p["hs_ticket_priority"],
		Category:     p["hs_ticket_category"],
		OwnerID:      p["hubspot_owner_id"],
		CustomFields: leftoverProps(p, ticketProperties),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
}

// ListTickets fetches one page of tickets.
func (c *Client) ListTickets(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Ticket], error) {
	return listObjects(ctx, c, ticketsAPI, opts)
}

// GetTicket fetches a single ticket by ID.
func (c *Client) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	return getObject(ctx, c, ticketsAPI, id)
}

// CreateTicket creates a ticket, then links it to the contact, company, and
// deal named in the input, in that order. The links are not transactional
// with the create: when a link call fails, the ticket is still returned
// together with an *AssociationError and nothing is rolled back.
func (c *Client) CreateTicket(ctx context.Context, in domain.TicketCreate) (*domain.Ticket, error) {
	ticket, err := createObject(ctx, c, ticketsAPI, in)
	if err != nil {
		return nil, err
	}

	err = c.associateAll(ctx, "tickets", ticket.ID, []assocLink{
		{toType: "contacts", toID: in.ContactID, typeID: assocTicketToContact},
		{toType: "companies", toID: in.CompanyID, typeID: assocTicketToCompany},
		{toType: "deals", toID: in.DealID, typeID: assocTicketToDeal},
	})
	return ticket, err
}

// UpdateTicket applies a partial update to a ticket.
func (c *Client) UpdateTicket(ctx context.Context, id string, in domain.TicketUpdate) (*domain.Ticket, error) {
	return updateObject(ctx, c, ticketsAPI, id, in)
}

// DeleteTicket archives a ticket.
func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	return deleteObject(ctx, c, ticketsAPI, id)
}

// SearchTickets searches tickets with filters, free-text query, and sort.
func (c *Client) SearchTickets(ctx context.Context, opts domain.SearchOptions) (*domain.Page[domain.Ticket], error) {
	return searchObjects(ctx, c, ticketsAPI, opts)
}
