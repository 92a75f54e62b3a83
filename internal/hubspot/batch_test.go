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

func TestBatchReadPartialFailureIsData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/contacts/batch/read", r.URL.Path)
		w.WriteHeader(http.StatusMultiStatus)
		_, _ = w.Write([]byte(`{
			"status": "COMPLETE_WITH_ERRORS",
			"results": [
				{"id": "1", "properties": {"email": "a@b.com"}},
				{"id": "2", "properties": {"email": "c@d.com"}}
			],
			"errors": [
				{"status": "error", "message": "not found", "context": {"ids": ["9"]}}
			]
		}`))
	})

	res, err := c.BatchReadContacts(context.Background(), []string{"1", "2", "9"}, nil)
	require.NoError(t, err, "per-item failures never surface as a call error")

	assert.Len(t, res.Results, 2)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "9", res.Errors[0].ID)
	assert.Equal(t, "not found", res.Errors[0].Message)
}

func TestBatchReadExplicitProperties(t *testing.T) {
	var gotBody batchReadRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"status": "COMPLETE", "results": []}`))
	})

	_, err := c.BatchReadContacts(context.Background(), []string{"1"}, []string{"email", "shoe_size"})
	require.NoError(t, err)

	assert.Equal(t, []string{"email", "shoe_size"}, gotBody.Properties,
		"explicit properties replace the fixed per-family set")
	require.Len(t, gotBody.Inputs, 1)
	assert.Equal(t, "1", gotBody.Inputs[0].ID)
}

func TestBatchCreateDeals(t *testing.T) {
	var gotBody batchCreateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/deals/batch/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"status": "COMPLETE",
			"results": [{"id": "10", "properties": {"dealname": "One"}}]
		}`))
	})

	res, err := c.BatchCreateDeals(context.Background(), []domain.DealCreate{{Name: "One", Amount: "500"}})
	require.NoError(t, err)

	require.Len(t, gotBody.Inputs, 1)
	assert.Equal(t, "One", gotBody.Inputs[0].Properties["dealname"])
	assert.Equal(t, "500", gotBody.Inputs[0].Properties["amount"])
	require.Len(t, res.Results, 1)
	assert.Equal(t, "10", res.Results[0].ID)
}

func TestBatchUpdateTickets(t *testing.T) {
	var gotBody batchUpdateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/tickets/batch/update", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"status": "COMPLETE", "results": [{"id": "7", "properties": {}}]}`))
	})

	_, err := c.BatchUpdateTickets(context.Background(), []domain.BatchUpdateItem[domain.TicketUpdate]{
		{ID: "7", Fields: domain.TicketUpdate{Priority: strPtr("HIGH")}},
	})
	require.NoError(t, err)

	require.Len(t, gotBody.Inputs, 1)
	assert.Equal(t, "7", gotBody.Inputs[0].ID)
	assert.Equal(t, map[string]string{"hs_ticket_priority": "HIGH"}, gotBody.Inputs[0].Properties)
}

func TestBatchArchiveCompanies(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.BatchArchiveCompanies(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, "/crm/v3/objects/companies/batch/archive", gotPath)
}
