package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

var companyProperties = []string{
	"name", "domain", "industry", "phone", "website", "city", "state",
	"zip", "country", "description", "numberofemployees", "annualrevenue",
	"hubspot_owner_id",
}

var companiesAPI = objectAPI[domain.Company, domain.CompanyCreate, domain.CompanyUpdate]{
	typeName:     "companies",
	properties:   companyProperties,
	encodeCreate: encodeCompanyCreate,
	encodeUpdate: encodeCompanyUpdate,
	decode:       decodeCompany,
}

func encodeCompanyCreate(in domain.CompanyCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "name", in.Name)
	setIf(p, "domain", in.Domain)
	setIf(p, "industry", in.Industry)
	setIf(p, "phone", in.Phone)
	setIf(p, "website", in.Website)
	setIf(p, "city", in.City)
	setIf(p, "state", in.State)
	setIf(p, "zip", in.Zip)
	setIf(p, "country", in.Country)
	setIf(p, "description", in.Description)
	setIf(p, "numberofemployees", in.NumberOfEmployees)
	setIf(p, "annualrevenue", in.AnnualRevenue)
	setIf(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func encodeCompanyUpdate(in domain.CompanyUpdate) map[string]string {
	p := make(map[string]string)
	setPtr(p, "name", in.Name)
	setPtr(p, "domain", in.Domain)
	setPtr(p, "industry", in.Industry)
	setPtr(p, "phone", in.Phone)
	setPtr(p, "website", in.Website)
	setPtr(p, "city", in.City)
	setPtr(p, "state", in.State)
	setPtr(p, "zip", in.Zip)
	setPtr(p, "country", in.Country)
	setPtr(p, "description", in.Description)
	setPtr(p, "numberofemployees", in.NumberOfEmployees)
	setPtr(p, "annualrevenue", in.AnnualRevenue)
	setPtr(p, "hubspot_owner_id", in.OwnerID)
	mergeCustom(p, in.CustomFields)
	return p
}

func decodeCompany(raw rawObject) domain.Company {
	p := raw.Properties
	return domain.Company{
		ID:                raw.ID,
		Name:              p["name"],
		Domain:            p["domain"],
		Industry:          p["industry"],
		Phone:             p["phone"],
		Website:           p["website"],
		City:              p["city"],
		State:             p["state"],
		Zip:               p["zip"],
		Country:           p["country"],
		Description:       p["description"],
		NumberOfEmployees: p["numberofemployees"],
		AnnualRevenue:     p["annualrevenue"],
		OwnerID:           p["hubspot_owner_id"],
		CustomFields:      leftoverProps(p, companyProperties),
		CreatedAt:         raw.CreatedAt,
		UpdatedAt:         raw.UpdatedAt,
		Archived:          raw.Archived,
	}
}

// ListCompanies fetches one page of companies.
func (c *Client) ListCompanies(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Company], error) {
	return listObjects(ctx, c, companiesAPI, opts)
}

// GetCompany fetches a single company by ID.
func (c *Client) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return getObject(ctx, c, companiesAPI, id)
}

// CreateCompany creates a company and returns it with server-assigned fields.
func (c *Client) CreateCompany(ctx context.Context, in domain.CompanyCreate) (*domain.Company, error) {
	return createObject(ctx, c, companiesAPI, in)
}

// UpdateCompany applies a partial update to a company.
func (c *Client) UpdateCompany(ctx context.Context, id string, in domain.CompanyUpdate) (*domain.Company, error) {
	return updateObject(ctx, c, companiesAPI, id, in)
}

// DeleteCompany archives a company.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return deleteObject(ctx, c, companiesAPI, id)
}

// SearchCompanies searches companies with filters, free-text query, and sort.
func (c *Client) SearchCompanies(ctx context.Context, opts domain.SearchOptions) (*domain.Page[domain.Company], error) {
	return searchObjects(ctx, c, companiesAPI, opts)
}
