package domain

// Values in read shapes are kept as the CRM returns them: strings, with
// timestamps as opaque ISO-8601 text that is never parsed locally.
// CustomFields on a read shape is only populated by batch reads that name
// extra properties explicitly; list and get requests a fixed property set.
//
// Update inputs use pointer fields: a nil field is omitted from the outgoing
// patch and the value on the server is left untouched, while a pointer to the
// zero value clears the property.

// Contact is a CRM contact record.
type Contact struct {
	ID             string            `json:"id"`
	FirstName      string            `json:"firstName,omitempty"`
	LastName       string            `json:"lastName,omitempty"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Company        string            `json:"company,omitempty"`
	JobTitle       string            `json:"jobTitle,omitempty"`
	Website        string            `json:"website,omitempty"`
	LifecycleStage string            `json:"lifecycleStage,omitempty"`
	OwnerID        string            `json:"ownerId,omitempty"`
	Address        string            `json:"address,omitempty"`
	City           string            `json:"city,omitempty"`
	State          string            `json:"state,omitempty"`
	Zip            string            `json:"zip,omitempty"`
	Country        string            `json:"country,omitempty"`
	CustomFields   map[string]string `json:"customFields,omitempty"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
	Archived       bool              `json:"archived,omitempty"`
}

// ContactCreate holds the fields for creating a contact.
type ContactCreate struct {
	Email          string         `json:"email" jsonschema:"contact email address"`
	FirstName      string         `json:"firstName,omitempty" jsonschema:"first name"`
	LastName       string         `json:"lastName,omitempty" jsonschema:"last name"`
	Phone          string         `json:"phone,omitempty" jsonschema:"phone number"`
	Company        string         `json:"company,omitempty" jsonschema:"company name"`
	JobTitle       string         `json:"jobTitle,omitempty" jsonschema:"job title"`
	Website        string         `json:"website,omitempty" jsonschema:"website URL"`
	LifecycleStage string         `json:"lifecycleStage,omitempty" jsonschema:"lifecycle stage, e.g. lead or customer"`
	OwnerID        string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	Address        string         `json:"address,omitempty" jsonschema:"street address"`
	City           string         `json:"city,omitempty" jsonschema:"city"`
	State          string         `json:"state,omitempty" jsonschema:"state or region"`
	Zip            string         `json:"zip,omitempty" jsonschema:"postal code"`
	Country        string         `json:"country,omitempty" jsonschema:"country"`
	CustomFields   map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// ContactUpdate holds a partial update for a contact.
type ContactUpdate struct {
	Email          *string        `json:"email,omitempty" jsonschema:"contact email address"`
	FirstName      *string        `json:"firstName,omitempty" jsonschema:"first name"`
	LastName       *string        `json:"lastName,omitempty" jsonschema:"last name"`
	Phone          *string        `json:"phone,omitempty" jsonschema:"phone number"`
	Company        *string        `json:"company,omitempty" jsonschema:"company name"`
	JobTitle       *string        `json:"jobTitle,omitempty" jsonschema:"job title"`
	Website        *string        `json:"website,omitempty" jsonschema:"website URL"`
	LifecycleStage *string        `json:"lifecycleStage,omitempty" jsonschema:"lifecycle stage"`
	OwnerID        *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	Address        *string        `json:"address,omitempty" jsonschema:"street address"`
	City           *string        `json:"city,omitempty" jsonschema:"city"`
	State          *string        `json:"state,omitempty" jsonschema:"state or region"`
	Zip            *string        `json:"zip,omitempty" jsonschema:"postal code"`
	Country        *string        `json:"country,omitempty" jsonschema:"country"`
	CustomFields   map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Company is a CRM company record.
type Company struct {
	ID                string            `json:"id"`
	Name              string            `json:"name,omitempty"`
	Domain            string            `json:"domain,omitempty"`
	Industry          string            `json:"industry,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Website           string            `json:"website,omitempty"`
	City              string            `json:"city,omitempty"`
	State             string            `json:"state,omitempty"`
	Zip               string            `json:"zip,omitempty"`
	Country           string            `json:"country,omitempty"`
	Description       string            `json:"description,omitempty"`
	NumberOfEmployees string            `json:"numberOfEmployees,omitempty"`
	AnnualRevenue     string            `json:"annualRevenue,omitempty"`
	OwnerID           string            `json:"ownerId,omitempty"`
	CustomFields      map[string]string `json:"customFields,omitempty"`
	CreatedAt         string            `json:"createdAt,omitempty"`
	UpdatedAt         string            `json:"updatedAt,omitempty"`
	Archived          bool              `json:"archived,omitempty"`
}

// CompanyCreate holds the fields for creating a company.
type CompanyCreate struct {
	Name              string         `json:"name" jsonschema:"company name"`
	Domain            string         `json:"domain,omitempty" jsonschema:"company website domain"`
	Industry          string         `json:"industry,omitempty" jsonschema:"industry"`
	Phone             string         `json:"phone,omitempty" jsonschema:"phone number"`
	Website           string         `json:"website,omitempty" jsonschema:"website URL"`
	City              string         `json:"city,omitempty" jsonschema:"city"`
	State             string         `json:"state,omitempty" jsonschema:"state or region"`
	Zip               string         `json:"zip,omitempty" jsonschema:"postal code"`
	Country           string         `json:"country,omitempty" jsonschema:"country"`
	Description       string         `json:"description,omitempty" jsonschema:"free-text description"`
	NumberOfEmployees string         `json:"numberOfEmployees,omitempty" jsonschema:"employee count"`
	AnnualRevenue     string         `json:"annualRevenue,omitempty" jsonschema:"annual revenue"`
	OwnerID           string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields      map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// CompanyUpdate holds a partial update for a company.
type CompanyUpdate struct {
	Name              *string        `json:"name,omitempty" jsonschema:"company name"`
	Domain            *string        `json:"domain,omitempty" jsonschema:"company website domain"`
	Industry          *string        `json:"industry,omitempty" jsonschema:"industry"`
	Phone             *string        `json:"phone,omitempty" jsonschema:"phone number"`
	Website           *string        `json:"website,omitempty" jsonschema:"website URL"`
	City              *string        `json:"city,omitempty" jsonschema:"city"`
	State             *string        `json:"state,omitempty" jsonschema:"state or region"`
	Zip               *string        `json:"zip,omitempty" jsonschema:"postal code"`
	Country           *string        `json:"country,omitempty" jsonschema:"country"`
	Description       *string        `json:"description,omitempty" jsonschema:"free-text description"`
	NumberOfEmployees *string        `json:"numberOfEmployees,omitempty" jsonschema:"employee count"`
	AnnualRevenue     *string        `json:"annualRevenue,omitempty" jsonschema:"annual revenue"`
	OwnerID           *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields      map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Deal is a CRM deal record.
type Deal struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Amount       string            `json:"amount,omitempty"`
	Stage        string            `json:"stage,omitempty"`
	Pipeline     string            `json:"pipeline,omitempty"`
	CloseDate    string            `json:"closeDate,omitempty"`
	DealType     string            `json:"dealType,omitempty"`
	Description  string            `json:"description,omitempty"`
	OwnerID      string            `json:"ownerId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
}

// DealCreate holds the fields for creating a deal.
type DealCreate struct {
	Name         string         `json:"name" jsonschema:"deal name"`
	Amount       string         `json:"amount,omitempty" jsonschema:"deal amount"`
	Stage        string         `json:"stage,omitempty" jsonschema:"pipeline stage ID"`
	Pipeline     string         `json:"pipeline,omitempty" jsonschema:"pipeline ID"`
	CloseDate    string         `json:"closeDate,omitempty" jsonschema:"expected close date, ISO 8601"`
	DealType     string         `json:"dealType,omitempty" jsonschema:"deal type, e.g. newbusiness"`
	Description  string         `json:"description,omitempty" jsonschema:"free-text description"`
	OwnerID      string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// DealUpdate holds a partial update for a deal.
type DealUpdate struct {
	Name         *string        `json:"name,omitempty" jsonschema:"deal name"`
	Amount       *string        `json:"amount,omitempty" jsonschema:"deal amount"`
	Stage        *string        `json:"stage,omitempty" jsonschema:"pipeline stage ID"`
	Pipeline     *string        `json:"pipeline,omitempty" jsonschema:"pipeline ID"`
	CloseDate    *string        `json:"closeDate,omitempty" jsonschema:"expected close date, ISO 8601"`
	DealType     *string        `json:"dealType,omitempty" jsonschema:"deal type"`
	Description  *string        `json:"description,omitempty" jsonschema:"free-text description"`
	OwnerID      *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Ticket is a CRM support ticket record.
type Ticket struct {
	ID           string            `json:"id"`
	Subject      string            `json:"subject,omitempty"`
	Content      string            `json:"content,omitempty"`
	Pipeline     string            `json:"pipeline,omitempty"`
	Stage        string            `json:"stage,omitempty"`
	Priority     string            `json:"priority,omitempty"`
	Category     string            `json:"category,omitempty"`
	OwnerID      string            `json:"ownerId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
}

// TicketCreate holds the fields for creating a ticket. The optional
// ContactID, CompanyID, and DealID are linked to the ticket right after it
// is created; see the adapter documentation for the partial-success shape
// when one of those link calls fails.
type TicketCreate struct {
	Subject      string         `json:"subject" jsonschema:"ticket subject"`
	Content      string         `json:"content,omitempty" jsonschema:"ticket body text"`
	Pipeline     string         `json:"pipeline,omitempty" jsonschema:"pipeline ID"`
	Stage        string         `json:"stage,omitempty" jsonschema:"pipeline stage ID"`
	Priority     string         `json:"priority,omitempty" jsonschema:"priority: LOW, MEDIUM, or HIGH"`
	Category     string         `json:"category,omitempty" jsonschema:"ticket category"`
	OwnerID      string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	ContactID    string         `json:"contactId,omitempty" jsonschema:"contact to associate with the ticket"`
	CompanyID    string         `json:"companyId,omitempty" jsonschema:"company to associate with the ticket"`
	DealID       string         `json:"dealId,omitempty" jsonschema:"deal to associate with the ticket"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// TicketUpdate holds a partial update for a ticket.
type TicketUpdate struct {
	Subject      *string        `json:"subject,omitempty" jsonschema:"ticket subject"`
	Content      *string        `json:"content,omitempty" jsonschema:"ticket body text"`
	Pipeline     *string        `json:"pipeline,omitempty" jsonschema:"pipeline ID"`
	Stage        *string        `json:"stage,omitempty" jsonschema:"pipeline stage ID"`
	Priority     *string        `json:"priority,omitempty" jsonschema:"priority: LOW, MEDIUM, or HIGH"`
	Category     *string        `json:"category,omitempty" jsonschema:"ticket category"`
	OwnerID      *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Lead is a CRM lead record.
type Lead struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Label        string            `json:"label,omitempty"`
	Type         string            `json:"type,omitempty"`
	OwnerID      string            `json:"ownerId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
}

// LeadCreate holds the fields for creating a lead.
type LeadCreate struct {
	Name         string         `json:"name" jsonschema:"lead name"`
	Label        string         `json:"label,omitempty" jsonschema:"lead label"`
	Type         string         `json:"type,omitempty" jsonschema:"lead type"`
	OwnerID      string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	ContactID    string         `json:"contactId,omitempty" jsonschema:"contact to associate with the lead"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// LeadUpdate holds a partial update for a lead.
type LeadUpdate struct {
	Name         *string        `json:"name,omitempty" jsonschema:"lead name"`
	Label        *string        `json:"label,omitempty" jsonschema:"lead label"`
	Type         *string        `json:"type,omitempty" jsonschema:"lead type"`
	OwnerID      *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Product is a CRM product catalog entry.
type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Price            string            `json:"price,omitempty"`
	SKU              string            `json:"sku,omitempty"`
	Cost             string            `json:"cost,omitempty"`
	BillingFrequency string            `json:"billingFrequency,omitempty"`
	CustomFields     map[string]string `json:"customFields,omitempty"`
	CreatedAt        string            `json:"createdAt,omitempty"`
	UpdatedAt        string            `json:"updatedAt,omitempty"`
	Archived         bool              `json:"archived,omitempty"`
}

// ProductCreate holds the fields for creating a product.
type ProductCreate struct {
	Name             string         `json:"name" jsonschema:"product name"`
	Description      string         `json:"description,omitempty" jsonschema:"product description"`
	Price            string         `json:"price,omitempty" jsonschema:"unit price"`
	SKU              string         `json:"sku,omitempty" jsonschema:"stock keeping unit"`
	Cost             string         `json:"cost,omitempty" jsonschema:"cost of goods sold"`
	BillingFrequency string         `json:"billingFrequency,omitempty" jsonschema:"recurring billing frequency, e.g. monthly"`
	CustomFields     map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// ProductUpdate holds a partial update for a product.
type ProductUpdate struct {
	Name             *string        `json:"name,omitempty" jsonschema:"product name"`
	Description      *string        `json:"description,omitempty" jsonschema:"product description"`
	Price            *string        `json:"price,omitempty" jsonschema:"unit price"`
	SKU              *string        `json:"sku,omitempty" jsonschema:"stock keeping unit"`
	Cost             *string        `json:"cost,omitempty" jsonschema:"cost of goods sold"`
	BillingFrequency *string        `json:"billingFrequency,omitempty" jsonschema:"recurring billing frequency"`
	CustomFields     map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// LineItem is a product attached to a deal or quote.
type LineItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	ProductID    string            `json:"productId,omitempty"`
	Quantity     string            `json:"quantity,omitempty"`
	Price        string            `json:"price,omitempty"`
	Amount       string            `json:"amount,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
}

// LineItemCreate holds the fields for creating a line item. DealID, when
// set, links the line item to the deal after creation.
type LineItemCreate struct {
	Name         string         `json:"name" jsonschema:"line item name"`
	ProductID    string         `json:"productId,omitempty" jsonschema:"product this line item is based on"`
	Quantity     string         `json:"quantity,omitempty" jsonschema:"quantity"`
	Price        string         `json:"price,omitempty" jsonschema:"unit price"`
	DealID       string         `json:"dealId,omitempty" jsonschema:"deal to attach the line item to"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// LineItemUpdate holds a partial update for a line item.
type LineItemUpdate struct {
	Name         *string        `json:"name,omitempty" jsonschema:"line item name"`
	Quantity     *string        `json:"quantity,omitempty" jsonschema:"quantity"`
	Price        *string        `json:"price,omitempty" jsonschema:"unit price"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Quote is a CRM sales quote.
type Quote struct {
	ID             string            `json:"id"`
	Title          string            `json:"title,omitempty"`
	ExpirationDate string            `json:"expirationDate,omitempty"`
	Status         string            `json:"status,omitempty"`
	CustomFields   map[string]string `json:"customFields,omitempty"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
	Archived       bool              `json:"archived,omitempty"`
}

// QuoteCreate holds the fields for creating a quote. DealID, when set, links
// the quote to the deal after creation.
type QuoteCreate struct {
	Title          string         `json:"title" jsonschema:"quote title"`
	ExpirationDate string         `json:"expirationDate,omitempty" jsonschema:"expiration date, ISO 8601"`
	Status         string         `json:"status,omitempty" jsonschema:"quote status, e.g. DRAFT"`
	DealID         string         `json:"dealId,omitempty" jsonschema:"deal to attach the quote to"`
	CustomFields   map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// QuoteUpdate holds a partial update for a quote.
type QuoteUpdate struct {
	Title          *string        `json:"title,omitempty" jsonschema:"quote title"`
	ExpirationDate *string        `json:"expirationDate,omitempty" jsonschema:"expiration date, ISO 8601"`
	Status         *string        `json:"status,omitempty" jsonschema:"quote status"`
	CustomFields   map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Invoice is a read-only commerce invoice record.
type Invoice struct {
	ID           string            `json:"id"`
	Number       string            `json:"number,omitempty"`
	Status       string            `json:"status,omitempty"`
	AmountBilled string            `json:"amountBilled,omitempty"`
	DueDate      string            `json:"dueDate,omitempty"`
	Currency     string            `json:"currency,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
}

// Order is a read-only commerce order record.
type Order struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Currency     string            `json:"currency,omitempty"`
	TotalPrice   string            `json:"totalPrice,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
}
