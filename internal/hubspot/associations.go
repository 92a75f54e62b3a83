package hubspot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// HubSpot-defined association type IDs used by the create side effects.
const (
	assocDealToContact    = 3
	assocTicketToContact  = 16
	assocLineItemToDeal   = 20
	assocTicketToCompany  = 26
	assocTicketToDeal     = 28
	assocQuoteToDeal      = 64
	assocNoteToCompany    = 190
	assocCallToContact    = 194
	assocEmailToContact   = 198
	assocMeetingToContact = 200
	assocNoteToContact    = 202
	assocNoteToDeal       = 214
	assocLeadToContact    = 578
)

// Associate creates a link between two objects. The backend treats the PUT
// as idempotent, so repeating the same call is not an error and leaves
// exactly one logical link.
func (c *Client) Associate(ctx context.Context, fromType, fromID, toType, toID string, typeID int) error {
	path := fmt.Sprintf("/crm/v3/objects/%s/%s/associations/%s/%s/%d", fromType, fromID, toType, toID, typeID)
	return c.do(ctx, http.MethodPut, path, nil, nil, nil)
}

// Disassociate removes a link between two objects.
func (c *Client) Disassociate(ctx context.Context, fromType, fromID, toType, toID string, typeID int) error {
	path := fmt.Sprintf("/crm/v3/objects/%s/%s/associations/%s/%s/%d", fromType, fromID, toType, toID, typeID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListAssociations fetches all objects of toType linked from one source
// object.
func (c *Client) ListAssociations(ctx context.Context, fromType, fromID, toType string) ([]domain.AssociationTarget, error) {
	var resp struct {
		Results []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"results"`
	}
	path := fmt.Sprintf("/crm/v3/objects/%s/%s/associations/%s", fromType, fromID, toType)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}

	targets := make([]domain.AssociationTarget, len(resp.Results))
	for i, r := range resp.Results {
		targets[i] = domain.AssociationTarget{ID: r.ID, Type: r.Type}
	}
	return targets, nil
}

// AssociationLabels fetches the catalog of legal link categories between two
// object families. This is metadata about which association types exist, not
// a listing of association instances.
func (c *Client) AssociationLabels(ctx context.Context, fromType, toType string) ([]domain.AssociationLabel, error) {
	var resp struct {
		Results []struct {
			Category string `json:"category"`
			TypeID   int    `json:"typeId"`
			Label    string `json:"label"`
		} `json:"results"`
	}
	path := fmt.Sprintf("/crm/v4/associations/%s/%s/labels", fromType, toType)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}

	labels := make([]domain.AssociationLabel, len(resp.Results))
	for i, r := range resp.Results {
		labels[i] = domain.AssociationLabel{Category: r.Category, TypeID: r.TypeID, Label: r.Label}
	}
	return labels, nil
}

// assocLink is one pending side-effect association after a create.
type assocLink struct {
	toType string
	toID   string
	typeID int
}

// associateAll issues the side-effect association calls that follow a
// successful create, sequentially and in order. The first failure aborts the
// remaining links and is reported as an AssociationError; completed links
// and the created object are never rolled back.
func (c *Client) associateAll(ctx context.Context, fromType, fromID string, links []assocLink) error {
	for _, l := range links {
		if l.toID == "" {
			continue
		}
		if err := c.Associate(ctx, fromType, fromID, l.toType, l.toID, l.typeID); err != nil {
			return &AssociationError{ObjectType: fromType, ObjectID: fromID, Err: err}
		}
	}
	return nil
}
