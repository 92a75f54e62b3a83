package hubspot_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/domain"
	"github.com/johnwards/hubspot-mcp/internal/hubmock"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

// newFakePortal spins up a hubmock instance and a client pointed at it.
func newFakePortal(t *testing.T) *hubspot.Client {
	t.Helper()
	store, err := hubmock.NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := httptest.NewServer(hubmock.NewHandler(store, "fake-token"))
	t.Cleanup(srv.Close)

	return hubspot.New(hubspot.Credentials{AccessToken: "fake-token", BaseURL: srv.URL})
}

func TestIntegrationRejectsBadToken(t *testing.T) {
	store, err := hubmock.NewStore()
	require.NoError(t, err)
	defer store.Close()
	srv := httptest.NewServer(hubmock.NewHandler(store, "fake-token"))
	defer srv.Close()

	c := hubspot.New(hubspot.Credentials{AccessToken: "wrong", BaseURL: srv.URL})
	_, err = c.ListContacts(context.Background(), domain.ListOptions{})

	var authErr *hubspot.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestIntegrationContactLifecycle(t *testing.T) {
	c := newFakePortal(t)
	ctx := context.Background()

	created, err := c.CreateContact(ctx, domain.ContactCreate{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Ada", created.FirstName)

	got, err := c.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)

	updated, err := c.UpdateContact(ctx, created.ID, domain.ContactUpdate{
		JobTitle: strPtrT("Engineer"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", updated.JobTitle)
	assert.Equal(t, "Ada", updated.FirstName, "untouched fields survive a partial update")

	require.NoError(t, c.DeleteContact(ctx, created.ID))
	_, err = c.GetContact(ctx, created.ID)
	var apiErr *hubspot.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)

	// Deleting again is idempotent.
	require.NoError(t, c.DeleteContact(ctx, created.ID))
}

func TestIntegrationListPagination(t *testing.T) {
	c := newFakePortal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := c.CreateContact(ctx, domain.ContactCreate{Email: "x@y.com"})
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	var cursor string
	pages := 0
	for {
		page, err := c.ListContacts(ctx, domain.ListOptions{Limit: 2, After: cursor})
		require.NoError(t, err)
		pages++
		for _, item := range page.Items {
			assert.False(t, seen[item.ID], "no duplicates across pages")
			seen[item.ID] = true
		}
		if !page.HasMore {
			break
		}
		require.NotEmpty(t, page.NextCursor)
		cursor = page.NextCursor
	}

	assert.Len(t, seen, 5)
	assert.Equal(t, 3, pages)
}

func TestIntegrationSearch(t *testing.T) {
	c := newFakePortal(t)
	ctx := context.Background()

	_, err := c.CreateContact(ctx, domain.ContactCreate{Email: "match@acme.com", FirstName: "Match"})
	require.NoError(t, err)
	_, err = c.CreateContact(ctx, domain.ContactCreate{Email: "other@example.com", FirstName: "Other", Phone: "123"})
	require.NoError(t, err)

	t.Run("eq filter", func(t *testing.T) {
		page, err := c.SearchContacts(ctx, domain.SearchOptions{
			Filters: []domain.Filter{{Field: "email", Operator: domain.OpEq, Value: "match@acme.com"}},
		})
		require.NoError(t, err)
		require.Equal(t, 1, page.Count)
		assert.Equal(t, "Match", page.Items[0].FirstName)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("contains filter", func(t *testing.T) {
		page, err := c.SearchContacts(ctx, domain.SearchOptions{
			Filters: []domain.Filter{{Field: "email", Operator: domain.OpContains, Value: "acme"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Count)
	})

	t.Run("is_null filter", func(t *testing.T) {
		page, err := c.SearchContacts(ctx, domain.SearchOptions{
			Filters: []domain.Filter{{Field: "phone", Operator: domain.OpIsNull}},
		})
		require.NoError(t, err)
		require.Equal(t, 1, page.Count)
		assert.Equal(t, "Match", page.Items[0].FirstName)
	})

	t.Run("free-text query", func(t *testing.T) {
		page, err := c.SearchContacts(ctx, domain.SearchOptions{Query: "acme"})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Count)
	})
}

func TestIntegrationAssociations(t *testing.T) {
	c := newFakePortal(t)
	ctx := context.Background()

	contact, err := c.CreateContact(ctx, domain.ContactCreate{Email: "a@b.com"})
	require.NoError(t, err)
	deal, err := c.CreateDeal(ctx, domain.DealCreate{Name: "Big"})
	require.NoError(t, err)

	require.NoError(t, c.Associate(ctx, "deals", deal.ID, "contacts", contact.ID, 3))
	// Idempotent repeat.
	require.NoError(t, c.Associate(ctx, "deals", deal.ID, "contacts", contact.ID, 3))

	targets, err := c.ListAssociations(ctx, "deals", deal.ID, "contacts")
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, contact.ID, targets[0].ID)

	require.NoError(t, c.Disassociate(ctx, "deals", deal.ID, "contacts", contact.ID, 3))
	targets, err = c.ListAssociations(ctx, "deals", deal.ID, "contacts")
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestIntegrationBatch(t *testing.T) {
	c := newFakePortal(t)
	ctx := context.Background()

	res, err := c.BatchCreateContacts(ctx, []domain.ContactCreate{
		{Email: "one@b.com"},
		{Email: "two@b.com"},
	})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	ids := []string{res.Results[0].ID, res.Results[1].ID, "missing-id"}
	read, err := c.BatchReadContacts(ctx, ids, nil)
	require.NoError(t, err, "partial failure is data, not an error")
	assert.Len(t, read.Results, 2)
	require.Len(t, read.Errors, 1)
	assert.Equal(t, "missing-id", read.Errors[0].ID)

	require.NoError(t, c.BatchArchiveContacts(ctx, []string{res.Results[0].ID}))
	_, err = c.GetContact(ctx, res.Results[0].ID)
	require.Error(t, err)
}

func TestIntegrationPipelines(t *testing.T) {
	c := newFakePortal(t)
	ctx := context.Background()

	pipelines, err := c.ListPipelines(ctx, "deals")
	require.NoError(t, err)
	require.Len(t, pipelines, 1)

	p, err := c.GetPipeline(ctx, "deals", pipelines[0].ID)
	require.NoError(t, err)
	require.Len(t, p.Stages, 3)

	// The fake serves stages out of display order; the adapter re-sorts.
	for i := 1; i < len(p.Stages); i++ {
		assert.LessOrEqual(t, p.Stages[i-1].DisplayOrder, p.Stages[i].DisplayOrder)
	}

	var won *domain.Stage
	for i := range p.Stages {
		if p.Stages[i].ID == "closedwon" {
			won = &p.Stages[i]
		}
	}
	require.NotNil(t, won)
	require.NotNil(t, won.Probability)
	assert.Equal(t, 1.0, *won.Probability)
	require.NotNil(t, won.Won)
	assert.True(t, *won.Won)
}

func TestIntegrationOwners(t *testing.T) {
	c := newFakePortal(t)

	page, err := c.ListOwners(context.Background(), domain.ListOptions{Limit: 1})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	assert.Equal(t, "owner@example.com", page.Items[0].Email)
}

func strPtrT(s string) *string { return &s }
