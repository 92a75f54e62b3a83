package hubspot

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

func strPtr(s string) *string { return &s }

func decodeCreateBody(t *testing.T, r *http.Request) map[string]string {
	t.Helper()
	var req createRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req.Properties
}

func TestListContactsPagination(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"results": [
				{"id": "1", "properties": {"email": "a@b.com", "firstname": "Ada"}},
				{"id": "2", "properties": {"email": "c@d.com"}}
			],
			"paging": {"next": {"after": "cursor-2"}}
		}`))
	})

	page, err := c.ListContacts(context.Background(), domain.ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"20"}, gotQuery["limit"], "default page limit")
	assert.Contains(t, gotQuery["properties"][0], "email")

	assert.Equal(t, 2, page.Count)
	assert.True(t, page.HasMore)
	assert.Equal(t, "cursor-2", page.NextCursor)
	assert.Equal(t, "Ada", page.Items[0].FirstName)
}

func TestListContactsLastPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"id": "1", "properties": {}}]}`))
	})

	page, err := c.ListContacts(context.Background(), domain.ListOptions{Limit: 50})
	require.NoError(t, err)

	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestCreateContactFieldMapping(t *testing.T) {
	var gotProps map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		gotProps = decodeCreateBody(t, r)
		_, _ = w.Write([]byte(`{"id": "101", "properties": {"email": "ada@example.com"}}`))
	})

	contact, err := c.CreateContact(context.Background(), domain.ContactCreate{
		Email:     "ada@example.com",
		FirstName: "Ada",
		CustomFields: map[string]any{
			"favorite_number": 42,
			"firstname":       "Override",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "101", contact.ID)
	assert.Equal(t, "ada@example.com", gotProps["email"])
	assert.Equal(t, "42", gotProps["favorite_number"], "custom values are serialized to strings")
	assert.Equal(t, "Override", gotProps["firstname"], "custom fields win over typed fields on collision")
	assert.NotContains(t, gotProps, "lastname", "empty fields are omitted")
}

func TestUpdateContactPointerSemantics(t *testing.T) {
	var gotProps map[string]string
	var gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotProps = decodeCreateBody(t, r)
		_, _ = w.Write([]byte(`{"id": "101", "properties": {}}`))
	})

	_, err := c.UpdateContact(context.Background(), "101", domain.ContactUpdate{
		Phone:     strPtr(""),
		FirstName: strPtr("Grace"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "Grace", gotProps["firstname"])

	phone, present := gotProps["phone"]
	assert.True(t, present, "pointer to empty string clears the field")
	assert.Equal(t, "", phone)
	assert.NotContains(t, gotProps, "lastname", "nil pointers leave the field untouched")
}

func TestDeleteContactPath(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteContact(context.Background(), "77"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/crm/v3/objects/contacts/77", gotPath)
}

func TestUnknownPropertiesBecomeCustomFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "5",
			"properties": {"email": "x@y.com", "shoe_size": "44", "t_shirt": "XL"}
		}`))
	})

	contact, err := c.GetContact(context.Background(), "5")
	require.NoError(t, err)

	assert.Equal(t, "x@y.com", contact.Email)
	assert.Equal(t, map[string]string{"shoe_size": "44", "t_shirt": "XL"}, contact.CustomFields)
}

func TestSearchDealsCarriesTotal(t *testing.T) {
	var gotBody searchRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/deals/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"total": 12,
			"results": [{"id": "9", "properties": {"dealname": "Big One"}}],
			"paging": {"next": {"after": "next-9"}}
		}`))
	})

	page, err := c.SearchDeals(context.Background(), domain.SearchOptions{
		Filters: []domain.Filter{{Field: "dealstage", Operator: domain.OpEq, Value: "won"}},
		Limit:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 1, page.Count)
	assert.True(t, page.HasMore)
	assert.Equal(t, "Big One", page.Items[0].Name)
	require.Len(t, gotBody.FilterGroups, 1)
	assert.Equal(t, "EQ", gotBody.FilterGroups[0].Filters[0].Operator)
}

func TestSearchUnknownOperatorFailsWithoutRequest(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.SearchContacts(context.Background(), domain.SearchOptions{
		Filters: []domain.Filter{{Field: "email", Operator: "fuzzy", Value: "x"}},
	})

	require.Error(t, err)
	assert.False(t, called, "invalid searches never reach the API")
}
