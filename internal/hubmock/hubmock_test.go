package hubmock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreObjectLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateObject(ctx, "contacts", map[string]string{"email": "a@b.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "a@b.com", created.Properties["email"])

	updated, err := s.UpdateObject(ctx, "contacts", created.ID, map[string]string{"phone": "555"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", updated.Properties["email"], "patch keeps existing properties")
	assert.Equal(t, "555", updated.Properties["phone"])

	require.NoError(t, s.ArchiveObject(ctx, "contacts", created.ID))
	got, err := s.GetObject(ctx, "contacts", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "archived objects are invisible")

	// Unknown type and unknown ID both read as missing, not as errors.
	got, err = s.GetObject(ctx, "companies", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreListPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.CreateObject(ctx, "deals", map[string]string{"dealname": "d"})
		require.NoError(t, err)
	}

	first, next, err := s.ListObjects(ctx, "deals", 2, "")
	require.NoError(t, err)
	assert.Len(t, first, 2)
	require.NotEmpty(t, next)

	second, next2, err := s.ListObjects(ctx, "deals", 2, next)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Empty(t, next2)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestHandlerRejectsMissingToken(t *testing.T) {
	srv := httptest.NewServer(NewHandler(newTestStore(t), "secret"))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/crm/v3/objects/contacts", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestSearchRejectsUnsupportedOperator(t *testing.T) {
	srv := httptest.NewServer(NewHandler(newTestStore(t), "secret"))
	defer srv.Close()

	body := `{"filterGroups":[{"filters":[{"propertyName":"email","operator":"BETWEEN","value":"x"}]}]}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/crm/v3/objects/contacts/search", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"unimplemented operators fail loudly instead of matching nothing")
}

func TestMatchFilter(t *testing.T) {
	props := map[string]string{"email": "ada@acme.com", "empty": ""}

	tests := []struct {
		name   string
		filter searchFilter
		want   bool
	}{
		{"eq hit", searchFilter{PropertyName: "email", Operator: "EQ", Value: "ada@acme.com"}, true},
		{"eq miss", searchFilter{PropertyName: "email", Operator: "EQ", Value: "x"}, false},
		{"neq on absent property", searchFilter{PropertyName: "phone", Operator: "NEQ", Value: "1"}, true},
		{"contains is case-insensitive", searchFilter{PropertyName: "email", Operator: "CONTAINS_TOKEN", Value: "ACME"}, true},
		{"has_property ignores empty values", searchFilter{PropertyName: "empty", Operator: "HAS_PROPERTY"}, false},
		{"not_has_property on absent", searchFilter{PropertyName: "phone", Operator: "NOT_HAS_PROPERTY"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchFilter(props, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBatchPartialFailureStatus(t *testing.T) {
	store := newTestStore(t)
	srv := httptest.NewServer(NewHandler(store, "secret"))
	defer srv.Close()

	obj, err := store.CreateObject(context.Background(), "contacts", map[string]string{"email": "a@b.com"})
	require.NoError(t, err)

	body := `{"inputs":[{"id":"` + obj.ID + `"},{"id":"nope"}]}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/crm/v3/objects/contacts/batch/read", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMultiStatus, resp.StatusCode)
}
