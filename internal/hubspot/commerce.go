package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Line items, quotes, and the read-only invoice and order families.

var lineItemProperties = []string{
	"name", "hs_product_id", "quantity", "price", "amount",
}

var lineItemsAPI = objectAPI[domain.LineItem, domain.LineItemCreate, domain.LineItemUpdate]{
	typeName:   "line_items",
	properties: lineItemProperties,
	encodeCreate: func(in domain.LineItemCreate) map[string]string {
		p := make(map[string]string)
		setIf(p, "name", in.Name)
		setIf(p, "hs_product_id", in.ProductID)
		setIf(p, "quantity", in.Quantity)
		setIf(p, "price", in.Price)
		mergeCustom(p, in.CustomFields)
		return p
	},
	encodeUpdate: func(in domain.LineItemUpdate) map[string]string {
		p := make(map[string]string)
		setPtr(p, "name", in.Name)
		setPtr(p, "quantity", in.Quantity)
		setPtr(p, "price", in.Price)
		mergeCustom(p, in.CustomFields)
		return p
	},
	decode: func(raw rawObject) domain.LineItem {
		p := raw.Properties
		return domain.LineItem{
			ID:           raw.ID,
			Name:         p["name"],
			ProductID:    p["hs_product_id"],
			Quantity:     p["quantity"],
			Price:        p["price"],
			Amount:       p["amount"],
			CustomFields: leftoverProps(p, lineItemProperties),
			CreatedAt:    raw.CreatedAt,
			UpdatedAt:    raw.UpdatedAt,
			Archived:     raw.Archived,
		}
	},
}

var quoteProperties = []string{
	"hs_title", "hs_expiration_date", "hs_status",
}

var quotesAPI = objectAPI[domain.Quote, domain.QuoteCreate, domain.QuoteUpdate]{
	typeName:   "quotes",
	properties: quoteProperties,
	encodeCreate: func(in domain.QuoteCreate) map[string]string {
		p := make(map[string]string)
		setIf(p, "hs_title", in.Title)
		setIf(p, "hs_expiration_date", in.ExpirationDate)
		setIf(p, "hs_status", in.Status)
		mergeCustom(p, in.CustomFields)
		return p
	},
	encodeUpdate: func(in domain.QuoteUpdate) map[string]string {
		p := make(map[string]string)
		setPtr(p, "hs_title", in.Title)
		setPtr(p, "hs_expiration_date", in.ExpirationDate)
		setPtr(p, "hs_status", in.Status)
		mergeCustom(p, in.CustomFields)
		return p
	},
	decode: func(raw rawObject) domain.Quote {
		p := raw.Properties
		return domain.Quote{
			ID:             raw.ID,
			Title:          p["hs_title"],
			ExpirationDate: p["hs_expiration_date"],
			Status:         p["hs_status"],
			CustomFields:   leftoverProps(p, quoteProperties),
			CreatedAt:      raw.CreatedAt,
			UpdatedAt:      raw.UpdatedAt,
			Archived:       raw.Archived,
		}
	},
}

var invoiceProperties = []string{
	"hs_number", "hs_invoice_status", "hs_amount_billed", "hs_due_date",
	"hs_currency",
}

var invoicesAPI = objectAPI[domain.Invoice, struct{}, struct{}]{
	typeName:   "invoices",
	properties: invoiceProperties,
	decode: func(raw rawObject) domain.Invoice {
		p := raw.Properties
		return domain.Invoice{
			ID:           raw.ID,
			Number:       p["hs_number"],
			Status:       p["hs_invoice_status"],
			AmountBilled: p["hs_amount_billed"],
			DueDate:      p["hs_due_date"],
			Currency:     p["hs_currency"],
			CustomFields: leftoverProps(p, invoiceProperties),
			CreatedAt:    raw.CreatedAt,
			UpdatedAt:    raw.UpdatedAt,
		}
	},
}

var orderProperties = []string{
	"hs_order_name", "hs_currency_code", "hs_total_price",
}

var ordersAPI = objectAPI[domain.Order, struct{}, struct{}]{
	typeName:   "orders",
	properties: orderProperties,
	decode: func(raw rawObject) domain.Order {
		p := raw.Properties
		return domain.Order{
			ID:           raw.ID,
			Name:         p["hs_order_name"],
			Currency:     p["hs_currency_code"],
			TotalPrice:   p["hs_total_price"],
			CustomFields: leftoverProps(p, orderProperties),
			CreatedAt:    raw.CreatedAt,
			UpdatedAt:    raw.UpdatedAt,
		}
	},
}

// ListLineItems fetches one page of line items.
func (c *Client) ListLineItems(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.LineItem], error) {
	return listObjects(ctx, c, lineItemsAPI, opts)
}

// GetLineItem fetches a single line item by ID.
func (c *Client) GetLineItem(ctx context.Context, id string) (*domain.LineItem, error) {
	return getObject(ctx, c, lineItemsAPI, id)
}

// CreateLineItem creates a line item, then links it to the deal named in the
// input. The link is not transactional with the create; see CreateTicket.
func (c *Client) CreateLineItem(ctx context.Context, in domain.LineItemCreate) (*domain.LineItem, error) {
	item, err := createObject(ctx, c, lineItemsAPI, in)
	if err != nil {
		return nil, err
	}

	err = c.associateAll(ctx, "line_items", item.ID, []assocLink{
		{toType: "deals", toID: in.DealID, typeID: assocLineItemToDeal},
	})
	return item, err
}

// UpdateLineItem applies a partial update to a line item.
func (c *Client) UpdateLineItem(ctx context.Context, id string, in domain.LineItemUpdate) (*domain.LineItem, error) {
	return updateObject(ctx, c, lineItemsAPI, id, in)
}

// DeleteLineItem archives a line item.
func (c *Client) DeleteLineItem(ctx context.Context, id string) error {
	return deleteObject(ctx, c, lineItemsAPI, id)
}

// ListQuotes fetches one page of quotes.
func (c *Client) ListQuotes(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Quote], error) {
	return listObjects(ctx, c, quotesAPI, opts)
}

// GetQuote fetches a single quote by ID.
func (c *Client) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	return getObject(ctx, c, quotesAPI, id)
}

// CreateQuote creates a quote, then links it to the deal named in the input.
// The link is not transactional with the create; see CreateTicket.
func (c *Client) CreateQuote(ctx context.Context, in domain.QuoteCreate) (*domain.Quote, error) {
	quote, err := createObject(ctx, c, quotesAPI, in)
	if err != nil {
		return nil, err
	}

	err = c.associateAll(ctx, "quotes", quote.ID, []assocLink{
		{toType: "deals", toID: in.DealID, typeID: assocQuoteToDeal},
	})
	return quote, err
}

// UpdateQuote applies a partial update to a quote.
func (c *Client) UpdateQuote(ctx context.Context, id string, in domain.QuoteUpdate) (*domain.Quote, error) {
	return updateObject(ctx, c, quotesAPI, id, in)
}

// DeleteQuote archives a quote.
func (c *Client) DeleteQuote(ctx context.Context, id string) error {
	return deleteObject(ctx, c, quotesAPI, id)
}

// ListInvoices fetches one page of invoices. Invoices are read-only.
func (c *Client) ListInvoices(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Invoice], error) {
	return listObjects(ctx, c, invoicesAPI, opts)
}

// GetInvoice fetches a single invoice by ID.
func (c *Client) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return getObject(ctx, c, invoicesAPI, id)
}

// ListOrders fetches one page of orders. Orders are read-only.
func (c *Client) ListOrders(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Order], error) {
	return listObjects(ctx, c, ordersAPI, opts)
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return getObject(ctx, c, ordersAPI, id)
}
