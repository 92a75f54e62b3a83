package hubspot

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

const defaultPageLimit = 20

// objectAPI parameterizes the shared CRUD and search implementation for one
// object family: the REST path segment, the fixed property set requested on
// list and get, and the field-mapping functions in each direction. All
// twelve families are instances of this table; there is no per-family
// request logic.
type objectAPI[T, C, U any] struct {
	typeName     string
	properties   []string
	encodeCreate func(C) map[string]string
	encodeUpdate func(U) map[string]string
	decode       func(rawObject) T
}

func (a objectAPI[T, C, U]) basePath() string {
	return "/crm/v3/objects/" + a.typeName
}

// listObjects fetches one page of a family. The property set is the fixed
// per-family list; custom fields outside it are only retrievable through
// batchRead with an explicit property list.
func listObjects[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], opts domain.ListOptions) (*domain.Page[T], error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("properties", strings.Join(api.properties, ","))
	if opts.After != "" {
		q.Set("after", opts.After)
	}

	var resp collectionResponse
	if err := c.do(ctx, http.MethodGet, api.basePath(), q, nil, &resp); err != nil {
		return nil, err
	}
	return pageFrom(decodeAll(api, resp.Results), resp.Paging, 0), nil
}

func getObject[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], id string) (*T, error) {
	q := url.Values{}
	q.Set("properties", strings.Join(api.properties, ","))

	var raw rawObject
	if err := c.do(ctx, http.MethodGet, api.basePath()+"/"+id, q, nil, &raw); err != nil {
		return nil, err
	}
	obj := api.decode(raw)
	return &obj, nil
}

func createObject[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], input C) (*T, error) {
	var raw rawObject
	body := createRequest{Properties: api.encodeCreate(input)}
	if err := c.do(ctx, http.MethodPost, api.basePath(), nil, body, &raw); err != nil {
		return nil, err
	}
	obj := api.decode(raw)
	return &obj, nil
}

// updateObject sends a partial patch: only fields present in the input are
// included, so everything else is untouched server-side. Last write wins at
// the backend; there is no version check.
func updateObject[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], id string, input U) (*T, error) {
	var raw rawObject
	body := createRequest{Properties: api.encodeUpdate(input)}
	if err := c.do(ctx, http.MethodPatch, api.basePath()+"/"+id, nil, body, &raw); err != nil {
		return nil, err
	}
	obj := api.decode(raw)
	return &obj, nil
}

func deleteObject[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], id string) error {
	return c.do(ctx, http.MethodDelete, api.basePath()+"/"+id, nil, nil, nil)
}

func searchObjects[T, C, U any](ctx context.Context, c *Client, api objectAPI[T, C, U], opts domain.SearchOptions) (*domain.Page[T], error) {
	req, err := buildSearchRequest(opts, api.properties)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, api.basePath()+"/search", nil, req, &resp); err != nil {
		return nil, err
	}
	return pageFrom(decodeAll(api, resp.Results), resp.Paging, resp.Total), nil
}

func decodeAll[T, C, U any](api objectAPI[T, C, U], raws []rawObject) []T {
	items := make([]T, len(raws))
	for i, raw := range raws {
		items[i] = api.decode(raw)
	}
	return items
}

// Encoding helpers shared by the per-family field maps.

// setIf adds a property when the input value is non-empty. Create inputs use
// plain strings, so an empty field simply stays absent from the request.
func setIf(props map[string]string, name, value string) {
	if value != "" {
		props[name] = value
	}
}

// setPtr adds a property only when the update field was supplied. A nil
// pointer is omitted entirely, which leaves the server value untouched; a
// pointer to the empty string clears it.
func setPtr(props map[string]string, name string, value *string) {
	if value != nil {
		props[name] = *value
	}
}

// mergeCustom folds customFields entries into the outgoing properties with
// their keys unchanged and values serialized via FormatValue. Called last,
// so a custom key that collides with a mapped field overwrites it; the
// adapter deliberately performs no collision guard.
func mergeCustom(props map[string]string, custom map[string]any) {
	for k, v := range custom {
		props[k] = FormatValue(v)
	}
}

// leftoverProps returns the raw properties that are not consumed by the
// family's explicit field mapping. These only show up when a batch read
// names extra properties; list and get request the fixed set.
func leftoverProps(props map[string]string, known []string) map[string]string {
	rest := make(map[string]string)
	for k, v := range props {
		if v == "" {
			continue
		}
		consumed := false
		for _, name := range known {
			if k == name {
				consumed = true
				break
			}
		}
		if !consumed {
			rest[k] = v
		}
	}
	if len(rest) == 0 {
		return nil
	}
	return rest
}
