package hubspot

import (
	"context"
	"net/http"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Property definitions pass straight through: the adapter does not validate
// type/fieldType combinations or check that customFields keys used elsewhere
// actually exist as properties.

type rawProperty struct {
	Name         string          `json:"name"`
	Label        string          `json:"label,omitempty"`
	Type         string          `json:"type,omitempty"`
	FieldType    string          `json:"fieldType,omitempty"`
	GroupName    string          `json:"groupName,omitempty"`
	Description  string          `json:"description,omitempty"`
	Options      []domain.Option `json:"options,omitempty"`
	DisplayOrder int             `json:"displayOrder,omitempty"`
	Hidden       bool            `json:"hidden,omitempty"`
	Calculated   bool            `json:"calculated,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
	Archived     bool            `json:"archived,omitempty"`
}

func propertiesPath(objectType string) string {
	return "/crm/v3/properties/" + objectType
}

// ListProperties fetches every property definition for one object family.
func (c *Client) ListProperties(ctx context.Context, objectType string) ([]domain.Property, error) {
	var resp struct {
		Results []rawProperty `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, propertiesPath(objectType), nil, nil, &resp); err != nil {
		return nil, err
	}

	props := make([]domain.Property, len(resp.Results))
	for i, raw := range resp.Results {
		props[i] = decodeProperty(raw)
	}
	return props, nil
}

// GetProperty fetches a single property definition by name.
func (c *Client) GetProperty(ctx context.Context, objectType, name string) (*domain.Property, error) {
	var raw rawProperty
	if err := c.do(ctx, http.MethodGet, propertiesPath(objectType)+"/"+name, nil, nil, &raw); err != nil {
		return nil, err
	}
	p := decodeProperty(raw)
	return &p, nil
}

// CreateProperty creates a property definition.
func (c *Client) CreateProperty(ctx context.Context, objectType string, in domain.PropertyCreate) (*domain.Property, error) {
	body := rawProperty{
		Name:        in.Name,
		Label:       in.Label,
		Type:        in.Type,
		FieldType:   in.FieldType,
		GroupName:   in.GroupName,
		Description: in.Description,
		Options:     in.Options,
	}

	var raw rawProperty
	if err := c.do(ctx, http.MethodPost, propertiesPath(objectType), nil, body, &raw); err != nil {
		return nil, err
	}
	p := decodeProperty(raw)
	return &p, nil
}

// UpdateProperty applies a partial update to a property definition.
func (c *Client) UpdateProperty(ctx context.Context, objectType, name string, in domain.PropertyUpdate) (*domain.Property, error) {
	body := make(map[string]any)
	if in.Label != nil {
		body["label"] = *in.Label
	}
	if in.Description != nil {
		body["description"] = *in.Description
	}
	if in.GroupName != nil {
		body["groupName"] = *in.GroupName
	}
	if in.Options != nil {
		body["options"] = in.Options
	}
	if in.Hidden != nil {
		body["hidden"] = *in.Hidden
	}

	var raw rawProperty
	if err := c.do(ctx, http.MethodPatch, propertiesPath(objectType)+"/"+name, nil, body, &raw); err != nil {
		return nil, err
	}
	p := decodeProperty(raw)
	return &p, nil
}

// DeleteProperty archives a property definition.
func (c *Client) DeleteProperty(ctx context.Context, objectType, name string) error {
	return c.do(ctx, http.MethodDelete, propertiesPath(objectType)+"/"+name, nil, nil, nil)
}

// ListPropertyGroups fetches the property groups of one object family.
func (c *Client) ListPropertyGroups(ctx context.Context, objectType string) ([]domain.PropertyGroup, error) {
	var resp struct {
		Results []domain.PropertyGroup `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, propertiesPath(objectType)+"/groups", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// CreatePropertyGroup creates a property group.
func (c *Client) CreatePropertyGroup(ctx context.Context, objectType string, in domain.PropertyGroupCreate) (*domain.PropertyGroup, error) {
	var group domain.PropertyGroup
	if err := c.do(ctx, http.MethodPost, propertiesPath(objectType)+"/groups", nil, in, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func decodeProperty(raw rawProperty) domain.Property {
	return domain.Property{
		Name:         raw.Name,
		Label:        raw.Label,
		Type:         raw.Type,
		FieldType:    raw.FieldType,
		GroupName:    raw.GroupName,
		Description:  raw.Description,
		Options:      raw.Options,
		DisplayOrder: raw.DisplayOrder,
		Hidden:       raw.Hidden,
		Calculated:   raw.Calculated,
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
}
