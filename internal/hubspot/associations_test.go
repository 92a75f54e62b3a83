package hubspot

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

func TestAssociatePathShape(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	err := c.Associate(context.Background(), "deals", "10", "contacts", "20", 3)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/crm/v3/objects/deals/10/associations/contacts/20/3", gotPath)
}

func TestAssociateIdempotent(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.Associate(context.Background(), "deals", "10", "contacts", "20", 3))
	require.NoError(t, c.Associate(context.Background(), "deals", "10", "contacts", "20", 3))
	assert.Equal(t, 2, calls)
}

func TestListAssociations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/objects/tickets/7/associations/contacts", r.URL.Path)
		_, _ = w.Write([]byte(`{"results": [
			{"id": "1", "type": "ticket_to_contact"},
			{"id": "2", "type": "ticket_to_contact"}
		]}`))
	})

	targets, err := c.ListAssociations(context.Background(), "tickets", "7", "contacts")
	require.NoError(t, err)

	require.Len(t, targets, 2)
	assert.Equal(t, "1", targets[0].ID)
	assert.Equal(t, "ticket_to_contact", targets[0].Type)
}

func TestAssociationLabels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v4/associations/deals/contacts/labels", r.URL.Path)
		_, _ = w.Write([]byte(`{"results": [
			{"category": "HUBSPOT_DEFINED", "typeId": 3, "label": ""},
			{"category": "USER_DEFINED", "typeId": 35, "label": "Decision maker"}
		]}`))
	})

	labels, err := c.AssociationLabels(context.Background(), "deals", "contacts")
	require.NoError(t, err)

	require.Len(t, labels, 2)
	assert.Equal(t, 3, labels[0].TypeID)
	assert.Equal(t, "Decision maker", labels[1].Label)
}

func TestCreateTicketAssociationPartialFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"id": "500", "properties": {"subject": "Help"}}`))
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message": "association backend down"}`))
		}
	})

	ticket, err := c.CreateTicket(context.Background(), domain.TicketCreate{
		Subject:   "Help",
		ContactID: "42",
	})

	var assocErr *AssociationError
	require.ErrorAs(t, err, &assocErr)
	assert.Equal(t, "tickets", assocErr.ObjectType)
	assert.Equal(t, "500", assocErr.ObjectID)

	require.NotNil(t, ticket, "the created ticket is returned despite the failed link")
	assert.Equal(t, "500", ticket.ID)
}

func TestCreateTicketSkipsEmptyAssociations(t *testing.T) {
	putCalls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"id": "501", "properties": {}}`))
		case http.MethodPut:
			putCalls++
			w.WriteHeader(http.StatusOK)
		}
	})

	_, err := c.CreateTicket(context.Background(), domain.TicketCreate{
		Subject:   "No links",
		CompanyID: "9",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, putCalls, "only the company link is issued")
}
