package hubspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

func TestBuildSearchRequestOperators(t *testing.T) {
	tests := []struct {
		name       string
		filter     domain.Filter
		wantOp     string
		wantValue  string
		wantValues []string
	}{
		{
			name:      "eq",
			filter:    domain.Filter{Field: "email", Operator: domain.OpEq, Value: "a@b.com"},
			wantOp:    "EQ",
			wantValue: "a@b.com",
		},
		{
			name:      "contains maps to token match",
			filter:    domain.Filter{Field: "firstname", Operator: domain.OpContains, Value: "ann"},
			wantOp:    "CONTAINS_TOKEN",
			wantValue: "ann",
		},
		{
			name:   "is_null maps to not-has-property without a value",
			filter: domain.Filter{Field: "phone", Operator: domain.OpIsNull, Value: "ignored"},
			wantOp: "NOT_HAS_PROPERTY",
		},
		{
			name:   "is_not_null maps to has-property",
			filter: domain.Filter{Field: "phone", Operator: domain.OpIsNotNull},
			wantOp: "HAS_PROPERTY",
		},
		{
			name:       "in carries the value list",
			filter:     domain.Filter{Field: "dealstage", Operator: domain.OpIn, Values: []string{"won", "lost"}},
			wantOp:     "IN",
			wantValues: []string{"won", "lost"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := buildSearchRequest(domain.SearchOptions{Filters: []domain.Filter{tt.filter}}, nil)
			require.NoError(t, err)
			require.Len(t, req.FilterGroups, 1, "all filters go in one AND group")
			require.Len(t, req.FilterGroups[0].Filters, 1)

			got := req.FilterGroups[0].Filters[0]
			assert.Equal(t, tt.filter.Field, got.PropertyName)
			assert.Equal(t, tt.wantOp, got.Operator)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantValues, got.Values)
		})
	}
}

func TestBuildSearchRequestUnknownOperator(t *testing.T) {
	_, err := buildSearchRequest(domain.SearchOptions{
		Filters: []domain.Filter{{Field: "email", Operator: "between", Value: "x"}},
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported search operator "between"`)
}

func TestBuildSearchRequestDefaults(t *testing.T) {
	req, err := buildSearchRequest(domain.SearchOptions{Query: "acme"}, []string{"name"})
	require.NoError(t, err)

	assert.Equal(t, "acme", req.Query)
	assert.Equal(t, defaultPageLimit, req.Limit)
	assert.Empty(t, req.FilterGroups)
	assert.Empty(t, req.Sorts)
	assert.Equal(t, []string{"name"}, req.Properties)
}

func TestBuildSearchRequestSort(t *testing.T) {
	req, err := buildSearchRequest(domain.SearchOptions{
		Sort:  &domain.Sort{Field: "createdate", Descending: true},
		Limit: 5,
	}, nil)
	require.NoError(t, err)

	require.Len(t, req.Sorts, 1)
	assert.Equal(t, "createdate", req.Sorts[0].PropertyName)
	assert.Equal(t, "DESCENDING", req.Sorts[0].Direction)
	assert.Equal(t, 5, req.Limit)

	req, err = buildSearchRequest(domain.SearchOptions{
		Sort: &domain.Sort{Field: "createdate"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ASCENDING", req.Sorts[0].Direction)
}

func TestPageFrom(t *testing.T) {
	t.Run("next cursor present", func(t *testing.T) {
		page := pageFrom([]int{1, 2}, &paging{Next: &pagingNext{After: "cur"}}, 7)
		assert.Equal(t, 2, page.Count)
		assert.Equal(t, 7, page.Total)
		assert.True(t, page.HasMore)
		assert.Equal(t, "cur", page.NextCursor)
	})

	t.Run("no paging means last page", func(t *testing.T) {
		page := pageFrom([]int{1}, nil, 0)
		assert.False(t, page.HasMore)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("empty after cursor means last page", func(t *testing.T) {
		page := pageFrom([]int{1}, &paging{Next: &pagingNext{After: ""}}, 0)
		assert.False(t, page.HasMore)
	})
}
