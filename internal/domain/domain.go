// Package domain defines the vendor-neutral CRM entity model: the object
// shapes, input contracts, and generic envelopes exchanged between the tool
// layer and the HubSpot client adapter. Types here carry no behavior.
package domain

// ListOptions holds the parameters for listing objects of one family.
type ListOptions struct {
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results per page, defaults to 20"`
	After string `json:"after,omitempty" jsonschema:"opaque pagination cursor returned by a previous call"`
}

// Page is a single page of list or search results. NextCursor is opaque and
// only valid for the same operation and filters that produced it. Total is
// populated by search endpoints only; list endpoints leave it zero.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Count      int    `json:"count"`
	Total      int    `json:"total,omitempty"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// BatchResult wraps the outcome of a bulk operation. Partial failure is an
// expected outcome: Results holds the entities that succeeded and Errors the
// per-item failures, and the call as a whole still counts as a success.
type BatchResult[T any] struct {
	Status  string       `json:"status"`
	Results []T          `json:"results"`
	Errors  []BatchError `json:"errors,omitempty"`
}

// BatchError describes a single failed item within a batch operation.
type BatchError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// BatchUpdateItem pairs an object ID with the partial update to apply to it.
type BatchUpdateItem[U any] struct {
	ID     string `json:"id" jsonschema:"ID of the object to update"`
	Fields U      `json:"fields" jsonschema:"fields to change; omitted fields are left untouched"`
}

// Operator identifies a generic search filter comparison.
type Operator string

// Generic filter operators accepted by search calls.
const (
	OpEq          Operator = "eq"
	OpNeq         Operator = "neq"
	OpLt          Operator = "lt"
	OpLte         Operator = "lte"
	OpGt          Operator = "gt"
	OpGte         Operator = "gte"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
	OpIn          Operator = "in"
	OpNotIn       Operator = "not_in"
	OpIsNull      Operator = "is_null"
	OpIsNotNull   Operator = "is_not_null"
)

// Filter is a single search condition. All filters in one search call are
// combined with AND.
type Filter struct {
	Field    string   `json:"field" jsonschema:"property name to filter on"`
	Operator Operator `json:"operator" jsonschema:"comparison operator: eq, neq, lt, lte, gt, gte, contains, not_contains, in, not_in, is_null, is_not_null"`
	Value    string   `json:"value,omitempty" jsonschema:"comparison value; unused for is_null and is_not_null"`
	Values   []string `json:"values,omitempty" jsonschema:"value list for the in and not_in operators"`
}

// Sort is a single-field sort order for search results.
type Sort struct {
	Field      string `json:"field" jsonschema:"property name to sort by"`
	Descending bool   `json:"descending,omitempty" jsonschema:"sort descending instead of ascending"`
}

// SearchOptions holds the parameters for a search call.
type SearchOptions struct {
	Query   string   `json:"query,omitempty" jsonschema:"free-text query matched against default searchable properties"`
	Filters []Filter `json:"filters,omitempty" jsonschema:"filter conditions, combined with AND"`
	Sort    *Sort    `json:"sort,omitempty" jsonschema:"optional sort order"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum number of results per page, defaults to 20"`
	After   string   `json:"after,omitempty" jsonschema:"opaque pagination cursor returned by a previous search"`
}
