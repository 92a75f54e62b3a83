package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

var dealProperties = []string{
	"dealname", "amount", "dealstage", "pipeline", "closedate", "dealtype",
	"description", "hubspot_owner_id",
}

var dealsAPI = objectAPI[domain.Deal, domain.DealCreate, domain.DealUpdate]{
	typeName:     "deals",
	properties:   dealProperties,
	encodeCreate: encodeDealCreate,
	encodeUpdate: encodeDealUpdate,
	decode:       decodeDeal,
}

func encodeDealCreate(in domain.DealCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "dealname", in.Name)
	setIf(p, "amount", in.Amount)
	setIf(p, "dealstage", in.Stage)
	setIf(p, "pipeline", in.Pipeline)
	setIf(p, "closedate", in.CloseDate)
	setIf(p, "dealtype", in.DealType)
	setIf(p, "description", in.Description)
	setIf(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func encodeDealUpdate(in domain.DealUpdate) map[string]string {
	p := make(map[string]string)
	setPtr(p, "dealname", in.Name)
	setPtr(p, "amount", in.Amount)
	setPtr(p, "dealstage", in.Stage)
	setPtr(p, "pipeline", in.Pipeline)
	setPtr(p, "closedate", in.CloseDate)
	setPtr(p, "dealtype", in.DealType)
	setPtr(p, "description", in.Description)
	setPtr(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func decodeDeal(raw rawObject) domain.Deal {
	p := raw.Properties
	return domain.Deal{
		ID:           raw.ID,
		Name:         p["dealname"],
		Amount:       p["amount"],
		Stage:        p["dealstage"],
		Pipeline:     p["pipeline"],
		CloseDate:    p["closedate"],
		DealType:     p["dealtype"],
		Description:  p["description"],
		OwnerID:      p["hubspot_owner_id"],
		CustomFields: leftoverProps(p, dealProperties),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
}

// ListDeals fetches one page of deals.
func (c *Client) ListDeals(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Deal], error) {
	return listObjects(ctx, c, dealsAPI, opts)
}

// GetDeal fetches a single deal by ID.
func (c *Client) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	return getObject(ctx, c, dealsAPI, id)
}

// CreateDeal creates a deal and returns it with server-assigned fields.
func (c *Client) CreateDeal(ctx context.Context, in domain.DealCreate) (*domain.Deal, error) {
	return createObject(ctx, c, dealsAPI, in)
}

// UpdateDeal applies a partial update to a deal.
func (c *Client) UpdateDeal(ctx context.Context, id string, in domain.DealUpdate) (*domain.Deal, error) {
	return updateObject(ctx, c, dealsAPI, id, in)
}

// DeleteDeal archives a deal.
func (c *Client) DeleteDeal(ctx context.Context, id string) error {
	return deleteObject(ctx, c, dealsAPI, id)
}

// SearchDeals searches deals with filters, free-text query, and sort.
func (c *Client) SearchDeals(ctx context.Context, opts domain.SearchOptions) (*domain.Page[domain.Deal], error) {
	return searchObjects(ctx, c, dealsAPI, opts)
}
