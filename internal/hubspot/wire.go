package hubspot

import (
	"fmt"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Raw HubSpot wire shapes. Property values arrive and leave as strings;
// timestamps stay opaque ISO-8601 text end to end.

type rawObject struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
	Archived   bool              `json:"archived"`
}

type pagingNext struct {
	After string `json:"after"`
}

type paging struct {
	Next *pagingNext `json:"next"`
}

type collectionResponse struct {
	Results []rawObject `json:"results"`
	Paging  *paging     `json:"paging"`
}

type searchResponse struct {
	Total   int         `json:"total"`
	Results []rawObject `json:"results"`
	Paging  *paging     `json:"paging"`
}

type searchRequest struct {
	Query        string        `json:"query,omitempty"`
	FilterGroups []filterGroup `json:"filterGroups,omitempty"`
	Sorts        []searchSort  `json:"sorts,omitempty"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit"`
	After        string        `json:"after,omitempty"`
}

type filterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchFilter struct {
	PropertyName string   `json:"propertyName"`
	Operator     string   `json:"operator"`
	Value        string   `json:"value,omitempty"`
	Values       []string `json:"values,omitempty"`
}

type searchSort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

type createRequest struct {
	Properties map[string]string `json:"properties"`
}

type batchIDInput struct {
	ID string `json:"id"`
}

type batchReadRequest struct {
	Inputs     []batchIDInput `json:"inputs"`
	Properties []string       `json:"properties,omitempty"`
}

type batchCreateRequest struct {
	Inputs []createRequest `json:"inputs"`
}

type batchUpdateInput struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type batchUpdateRequest struct {
	Inputs []batchUpdateInput `json:"inputs"`
}

type batchArchiveRequest struct {
	Inputs []batchIDInput `json:"inputs"`
}

type batchResponse struct {
	Status  string          `json:"status"`
	Results []rawObject     `json:"results"`
	Errors  []batchRawError `json:"errors"`
}

type batchRawError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Context struct {
		IDs []string `json:"ids"`
	} `json:"context"`
}

// operatorNames maps generic filter operators to HubSpot search operators.
var operatorNames = map[domain.Operator]string{
	domain.OpEq:          "EQ",
	domain.OpNeq:         "NEQ",
	domain.OpLt:          "LT",
	domain.OpLte:         "LTE",
	domain.OpGt:          "GT",
	domain.OpGte:         "GTE",
	domain.OpContains:    "CONTAINS_TOKEN",
	domain.OpNotContains: "NOT_CONTAINS_TOKEN",
	domain.OpIn:          "IN",
	domain.OpNotIn:       "NOT_IN",
	domain.OpIsNull:      "NOT_HAS_PROPERTY",
	domain.OpIsNotNull:   "HAS_PROPERTY",
}

// buildSearchRequest converts generic search options into HubSpot's search
// body. All filters go into a single filter group, so they are combined with
// AND; OR across groups is not exposed. An operator outside the mapping
// table is an error rather than a silent fall-through to equality.
func buildSearchRequest(opts domain.SearchOptions, properties []string) (*searchRequest, error) {
	req := &searchRequest{
		Query:      opts.Query,
		Properties: properties,
		Limit:      opts.Limit,
		After:      opts.After,
	}
	if req.Limit <= 0 {
		req.Limit = defaultPageLimit
	}

	if len(opts.Filters) > 0 {
		group := filterGroup{Filters: make([]searchFilter, 0, len(opts.Filters))}
		for _, f := range opts.Filters {
			op, ok := operatorNames[f.Operator]
			if !ok {
				return nil, fmt.Errorf("unsupported search operator %q", f.Operator)
			}
			sf := searchFilter{PropertyName: f.Field, Operator: op}
			switch f.Operator {
			case domain.OpIn, domain.OpNotIn:
				sf.Values = f.Values
			case domain.OpIsNull, domain.OpIsNotNull:
				// no value
			default:
				sf.Value = f.Value
			}
			group.Filters = append(group.Filters, sf)
		}
		req.FilterGroups = []filterGroup{group}
	}

	if opts.Sort != nil {
		direction := "ASCENDING"
		if opts.Sort.Descending {
			direction = "DESCENDING"
		}
		req.Sorts = []searchSort{{PropertyName: opts.Sort.Field, Direction: direction}}
	}

	return req, nil
}

// pageFrom builds a Page envelope from raw results and paging info. HasMore
// is derived from the presence of the next-page pointer, never from a count
// comparison.
func pageFrom[T any](items []T, p *paging, total int) *domain.Page[T] {
	page := &domain.Page[T]{
		Items: items,
		Count: len(items),
		Total: total,
	}
	if p != nil && p.Next != nil && p.Next.After != "" {
		page.HasMore = true
		page.NextCursor = p.Next.After
	}
	return page
}
