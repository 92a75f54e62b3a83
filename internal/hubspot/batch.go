package hubspot

import (
	"context"
	"net/http"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Batch operations are single round trips; the adapter does no chunking, so
// a caller exceeding the backend's per-call cap gets whatever failure the
// backend returns. Partial failure is data, not an error: the response's
// per-item errors are carried in BatchResult.Errors and the call succeeds.

func batchRead[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], ids []string, properties []string) (*domain.BatchResult[T], error) {
	// The one path where custom fields are retrievable in bulk: an explicit
	// property list overrides the fixed per-family set.
	if len(properties) == 0 {
		properties = api.properties
	}
	body := batchReadRequest{Inputs: idInputs(ids), Properties: properties}

	var resp batchResponse
	if err := c.do(ctx, http.MethodPost, api.basePath()+"/batch/read", nil, body, &resp); err != nil {
		return nil, err
	}
	return batchResultFrom(api, resp), nil
}

func batchCreate[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], inputs []C) (*domain.BatchResult[T], error) {
	body := batchCreateRequest{Inputs: make([]createRequest, len(inputs))}
	for i, in := range inputs {
		body.Inputs[i] = createRequest{Properties: api.encodeCreate(in)}
	}

	var resp batchResponse
	if err := c.do(ctx, http.MethodPost, api.basePath()+"/batch/create", nil, body, &resp); err != nil {
		return nil, err
	}
	return batchResultFrom(api, resp), nil
}

func batchUpdate[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], items []domain.BatchUpdateItem[U]) (*domain.BatchResult[T], error) {
	body := batchUpdateRequest{Inputs: make([]batchUpdateInput, len(items))}
	for i, item := range items {
		body.Inputs[i] = batchUpdateInput{ID: item.ID, Properties: api.encodeUpdate(item.Fields)}
	}

	var resp batchResponse
	if err := c.do(ctx, http.MethodPost, api.basePath()+"/batch/update", nil, body, &resp); err != nil {
		return nil, err
	}
	return batchResultFrom(api, resp), nil
}

func batchArchive[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], ids []string) error {
	body := batchArchiveRequest{Inputs: idInputs(ids)}
	return c.do(ctx, http.MethodPost, api.basePath()+"/batch/archive", nil, body, nil)
}

func idInputs(ids []string) []batchIDInput {
	inputs := make([]batchIDInput, len(ids))
	for i, id := range ids {
		inputs[i] = batchIDInput{ID: id}
	}
	return inputs
}

func batchResultFrom[T, C, U any](api objectAPI[T, C, U], resp batchResponse) *domain.BatchResult[T] {
	result := &domain.BatchResult[T]{
		Status:  resp.Status,
		Results: decodeAll(api, resp.Results),
	}
	for _, e := range resp.Errors {
		be := domain.BatchError{Status: e.Status, Message: e.Message}
		if len(e.Context.IDs) > 0 {
			be.ID = e.Context.IDs[0]
		}
		result.Errors = append(result.Errors, be)
	}
	return result
}

// BatchReadContacts reads contacts in bulk. A non-empty properties list
// overrides the fixed contact property set.
func (c *Client) BatchReadContacts(ctx context.Context, ids []string, properties []string) (*domain.BatchResult[domain.Contact], error) {
	return batchRead(ctx, c, contactsAPI, ids, properties)
}

// BatchCreateContacts creates contacts in bulk.
func (c *Client) BatchCreateContacts(ctx context.Context, inputs []domain.ContactCreate) (*domain.BatchResult[domain.Contact], error) {
	return batchCreate(ctx, c, contactsAPI, inputs)
}

// BatchUpdateContacts applies partial updates to contacts in bulk.
func (c *Client) BatchUpdateContacts(ctx context.Context, items []domain.BatchUpdateItem[domain.ContactUpdate]) (*domain.BatchResult[domain.Contact], error) {
	return batchUpdate(ctx, c, contactsAPI, items)
}

// BatchArchiveContacts archives contacts in bulk.
func (c *Client) BatchArchiveContacts(ctx context.Context, ids []string) error {
	return batchArchive(ctx, c, contactsAPI, ids)
}

// BatchReadCompanies reads companies in bulk.
func (c *Client) BatchReadCompanies(ctx context.Context, ids []string, properties []string) (*domain.BatchResult[domain.Company], error) {
	return batchRead(ctx, c, companiesAPI, ids, properties)
}

// BatchCreateCompanies creates companies in bulk.
func (c *Client) BatchCreateCompanies(ctx context.Context, inputs []domain.CompanyCreate) (*domain.BatchResult[domain.Company], error) {
	return batchCreate(ctx, c, companiesAPI, inputs)
}

// BatchUpdateCompanies applies partial updates to companies in bulk.
func (c *Client) BatchUpdateCompanies(ctx context.Context, items []domain.BatchUpdateItem[domain.CompanyUpdate]) (*domain.BatchResult[domain.Company], error) {
	return batchUpdate(ctx, c, companiesAPI, items)
}

// BatchArchiveCompanies archives companies in bulk.
func (c *Client) BatchArchiveCompanies(ctx context.Context, ids []string) error {
	return batchArchive(ctx, c, companiesAPI, ids)
}

// BatchReadDeals reads deals in bulk.
func (c *Client) BatchReadDeals(ctx context.Context, ids []string, properties []string) (*domain.BatchResult[domain.Deal], error) {
	return batchRead(ctx, c, dealsAPI, ids, properties)
}

// BatchCreateDeals creates deals in bulk.
func (c *Client) BatchCreateDeals(ctx context.Context, inputs []domain.DealCreate) (*domain.BatchResult[domain.Deal], error) {
	return batchCreate(ctx, c, dealsAPI, inputs)
}

// BatchUpdateDeals applies partial updates to deals in bulk.
func (c *Client) BatchUpdateDeals(ctx context.Context, items []domain.BatchUpdateItem[domain.DealUpdate]) (*domain.BatchResult[domain.Deal], error) {
	return batchUpdate(ctx, c, dealsAPI, items)
}

// BatchArchiveDeals archives deals in bulk.
func (c *Client) BatchArchiveDeals(ctx context.Context, ids []string) error {
	return batchArchive(ctx, c, dealsAPI, ids)
}

// BatchReadTickets reads tickets in bulk.
func (c *Client) BatchReadTickets(ctx context.Context, ids []string, properties []string) (*domain.BatchResult[domain.Ticket], error) {
	return batchRead(ctx, c, ticketsAPI, ids, properties)
}

// BatchCreateTickets creates tickets in bulk. Unlike CreateTicket, batch
// creation performs no association side effects.
func (c *Client) BatchCreateTickets(ctx context.Context, inputs []domain.TicketCreate) (*domain.BatchResult[domain.Ticket], error) {
	return batchCreate(ctx, c, ticketsAPI, inputs)
}

// BatchUpdateTickets applies partial updates to tickets in bulk.
func (c *Client) BatchUpdateTickets(ctx context.Context, items []domain.BatchUpdateItem[domain.TicketUpdate]) (*domain.BatchResult[domain.Ticket], error) {
	return batchUpdate(ctx, c, ticketsAPI, items)
}

// BatchArchiveTickets archives tickets in bulk.
func (c *Client) BatchArchiveTickets(ctx context.Context, ids []string) error {
	return batchArchive(ctx, c, ticketsAPI, ids)
}
