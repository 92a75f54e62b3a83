package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

var productProperties = []string{
	"name", "description", "price", "hs_sku", "hs_cost_of_goods_sold",
	"recurringbillingfrequency",
}

var productsAPI = objectAPI[domain.Product, domain.ProductCreate, domain.ProductUpdate]{
	typeName:     "products",
	properties:   productProperties,
	encodeCreate: encodeProductCreate,
	encodeUpdate: encodeProductUpdate,
	decode:       decodeProduct,
}

func encodeProductCreate(in domain.ProductCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "name", in.Name)
	setIf(p, "description", in.Description)
	setIf(p, "price", in.Price)
	setIf(p, "hs_sku", in.SKU)
	setIf(p, "hs_cost_of_goods_sold", in.Cost)
	setIf(p, "recurringbillingfrequency", in.BillingFrequency)
	mergeCustom(p, in.CustomFields)
	return p
}

func encodeProductUpdate(in domain.ProductUpdate) map[string]string {
	p := make(map[string]string)
	setPtr(p, "name", in.Name)
	setPtr(p, "description", in.Description)
	setPtr(p, "price", in.Price)
	setPtr(p, "hs_sku", in.SKU)
	setPtr(p, "hs_cost_of_goods_sold", in.Cost)
	setPtr(p, "recurringbillingfrequency", in.BillingFrequency)
	mergeCustom(p, in.CustomFields)
	return p
}

func decodeProduct(raw rawObject) domain.Product {
	p := raw.Properties
	return domain.Product{
		ID:               raw.ID,
		Name:             p["name"],
		Description:      p["description"],
		Price:            p["price"],
		SKU:              p["hs_sku"],
		Cost:             p["hs_cost_of_goods_sold"],
		BillingFrequency: p["recurringbillingfrequency"],
		CustomFields:     leftoverProps(p, productProperties),
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
		Archived:         raw.Archived,
	}
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Product], error) {
	return listObjects(ctx, c, productsAPI, opts)
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return getObject(ctx, c, productsAPI, id)
}

// CreateProduct creates a product and returns it with server-assigned fields.
func (c *Client) CreateProduct(ctx context.Context, in domain.ProductCreate) (*domain.Product, error) {
	return createObject(ctx, c, productsAPI, in)
}

// UpdateProduct applies a partial update to a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, in domain.ProductUpdate) (*domain.Product, error) {
	return updateObject(ctx, c, productsAPI, id, in)
}

// DeleteProduct archives a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return deleteObject(ctx, c, productsAPI, id)
}

// SearchProducts searches products with filters, free-text query, and sort.
func (c *Client) SearchProducts(ctx context.Context, opts domain.SearchOptions) (*domain.Page[domain.Product], error) {
	return searchObjects(ctx, c, productsAPI, opts)
}
