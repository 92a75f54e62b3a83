package hubspot

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Owners and webhook subscriptions are read-only surfaces.

// ListOwners fetches one page of CRM owners.
func (c *Client) ListOwners(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Owner], error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if opts.After != "" {
		q.Set("after", opts.After)
	}

	var resp struct {
		Results []domain.Owner `json:"results"`
		Paging  *paging        `json:"paging"`
	}
	if err := c.do(ctx, http.MethodGet, "/crm/v3/owners", q, nil, &resp); err != nil {
		return nil, err
	}
	return pageFrom(resp.Results, resp.Paging, 0), nil
}

// GetOwner fetches a single owner by ID.
func (c *Client) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	var owner domain.Owner
	if err := c.do(ctx, http.MethodGet, "/crm/v3/owners/"+id, nil, nil, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// ListWebhookSubscriptions fetches the webhook subscriptions registered for
// an app.
func (c *Client) ListWebhookSubscriptions(ctx context.Context, appID string) ([]domain.WebhookSubscription, error) {
	var resp struct {
		Results []domain.WebhookSubscription `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, "/webhooks/v3/"+appID+"/subscriptions", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
