package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

var contactProperties = []string{
	"email", "firstname", "lastname", "phone", "company", "jobtitle",
	"website", "lifecyclestage", "hubspot_owner_id", "address", "city",
	"state", "zip", "country",
}

var contactsAPI = objectAPI[domain.Contact, domain.ContactCreate, domain.ContactUpdate]{
	typeName:     "contacts",
	properties:   contactProperties,
	encodeCreate: encodeContactCreate,
	encodeUpdate: encodeContactUpdate,
	decode:       decodeContact,
}

func encodeContactCreate(in domain.ContactCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "email", in.Email)
	setIf(p, "firstname", in.FirstName)
	setIf(p, "lastname", in.LastName)
	setIf(p, "phone", in.Phone)
	setIf(p, "company", in.Company)
	setIf(p, "jobtitle", in.JobTitle)
	setIf(p, "website", in.Website)
	setIf(p, "lifecyclestage", in.LifecycleStage)
	setIf(p, "hubspot_owner_id", in.OwnerID)
	setIf(p, "address", in.Address)
	setIf(p, "city", in.City)
	setIf(p, "state", in.State)
	setIf(p, "zip", in.Zip)
	setIf(p, "country", in.Country)
	mergeCustom(p, in.CustomFields)
	return p
}

func encodeContactUpdate(in domain.ContactUpdate) map[string]string {
	p := make(map[string]string)
	setPtr(p, "email", in.Email)
	setPtr(p, "firstname", in.FirstName)
	setPtr(p, "lastname", in.LastName)
	setPtr(p, "phone", in.Phone)
	setPtr(p, "company", in.Company)
	setPtr(p, "jobtitle", in.JobTitle)
	setPtr(p, "website", in.Website)
	setPtr(p, "lifecyclestage", in.LifecycleStage)
	setPtr(p, "hubspot_owner_id", in.OwnerID)
	setPtr(p, "address", in.Address)
	setPtr(p, "city", in.City)
	setPtr(p, "state", in.State)
	setPtr(p, "zip", in.Zip)
	setPtr(p, "country", in.Country)
	mergeCustom(p, in.CustomFields)
	return p
}

func decodeContact(raw rawObject) domain.Contact {
	p := raw.Properties
	return domain.Contact{
		ID:             raw.ID,
		Email:          p["email"],
		FirstName:      p["firstname"],
		LastName:       p["lastname"],
		Phone:          p["phone"],
		Company:        p["company"],
		JobTitle:       p["jobtitle"],
		Website:        p["website"],
		LifecycleStage: p["lifecyclestage"],
		OwnerID:        p["hubspot_owner_id"],
		Address:        p["address"],
		City:           p["city"],
		State:          p["state"],
		Zip:            p["zip"],
		Country:        p["country"],
		CustomFields:   leftoverProps(p, contactProperties),
		CreatedAt:      raw.CreatedAt,
		UpdatedAt:      raw.UpdatedAt,
		Archived:       raw.Archived,
	}
}

// ListContacts fetches one page of contacts.
func (c *Client) ListContacts(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Contact], error) {
	return listObjects(ctx, c, contactsAPI, opts)
}

// GetContact fetches a single contact by ID.
func (c *Client) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return getObject(ctx, c, contactsAPI, id)
}

// CreateContact creates a contact and returns it with server-assigned fields.
func (c *Client) CreateContact(ctx context.Context, in domain.ContactCreate) (*domain.Contact, error) {
	return createObject(ctx, c, contactsAPI, in)
}

// UpdateContact applies a partial update to a contact.
func (c *Client) UpdateContact(ctx context.Context, id string, in domain.ContactUpdate) (*domain.Contact, error) {
	return updateObject(ctx, c, contactsAPI, id, in)
}

// DeleteContact archives a contact.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return deleteObject(ctx, c, contactsAPI, id)
}

// SearchContacts searches contacts with filters, free-text query, and sort.
func (c *Client) SearchContacts(ctx context.Context, opts domain.SearchOptions) (*domain.Page[domain.Contact], error) {
	return searchObjects(ctx, c, contactsAPI, opts)
}
