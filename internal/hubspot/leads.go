package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

var leadProperties = []string{
	"hs_lead_name", "hs_lead_label", "hs_lead_type", "hubspot_owner_id",
}

var leadsAPI = objectAPI[domain.Lead, domain.LeadCreate, domain.LeadUpdate]{
	typeName:     "leads",
	properties:   leadProperties,
	encodeCreate: encodeLeadCreate,
	encodeUpdate: encodeLeadUpdate,
	decode:       decodeLead,
}

func encodeLeadCreate(in domain.LeadCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "hs_lead_name", in.Name)
	setIf(p, "hs_lead_label", in.Label)
	setIf(p, "hs_lead_type", in.Type)
	setIf(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func encodeLeadUpdate(in domain.LeadUpdate) map[string]string {
	p := make(map[string]string)
	setPtr(p, "hs_lead_name", in.Name)
	setPtr(p, "hs_lead_label", in.Label)
	setPtr(p, "hs_lead_type", in.Type)
	setPtr(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func decodeLead(raw rawObject) domain.Lead {
	p := raw.Properties
	return domain.Lead{
		ID:           raw.ID,
		Name:         p["hs_lead_name"],
		Label:        p["hs_lead_label"],
		Type:         p["hs_lead_type"],
		OwnerID:      p["hubspot_owner_id"],
		CustomFields: leftoverProps(p, leadProperties),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
}

// ListLeads fetches one page of leads.
func (c *Client) ListLeads(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Lead], error) {
	return listObjects(ctx, c, leadsAPI, opts)
}

// GetLead fetches a single lead by ID.
func (c *Client) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	return getObject(ctx, c, leadsAPI, id)
}

// CreateLead creates a lead, then links it to the contact named in the
// input. The link is not transactional with the create; see CreateTicket.
func (c *Client) CreateLead(ctx context.Context, in domain.LeadCreate) (*domain.Lead, error) {
	lead, err := createObject(ctx, c, leadsAPI, in)
	if err != nil {
		return nil, err
	}

	err = c.associateAll(ctx, "leads", lead.ID, []assocLink{
		{toType: "contacts", toID: in.ContactID, typeID: assocLeadToContact},
	})
	return lead, err
}

// UpdateLead applies a partial update to a lead.
func (c *Client) UpdateLead(ctx context.Context, id string, in domain.LeadUpdate) (*domain.Lead, error) {
	return updateObject(ctx, c, leadsAPI, id, in)
}

// DeleteLead archives a lead.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return deleteObject(ctx, c, leadsAPI, id)
}

// SearchLeads searches leads with filters, free-text query, and sort.
func (c *Client) SearchLeads(ctx context.Context, opts domain.SearchOptions) (*domain.Page[domain.Lead], error) {
	return searchObjects(ctx, c, leadsAPI, opts)
}
