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

func TestGetPipelineSortsStages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/crm/v3/pipelines/deals/default", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": "default",
			"label": "Sales Pipeline",
			"displayOrder": 0,
			"stages": [
				{"id": "closedwon", "label": "Closed Won", "displayOrder": 2},
				{"id": "new", "label": "New", "displayOrder": 0},
				{"id": "qualified", "label": "Qualified", "displayOrder": 1}
			]
		}`))
	})

	p, err := c.GetPipeline(context.Background(), "deals", "default")
	require.NoError(t, err)

	require.Len(t, p.Stages, 3)
	assert.Equal(t, "new", p.Stages[0].ID)
	assert.Equal(t, "qualified", p.Stages[1].ID)
	assert.Equal(t, "closedwon", p.Stages[2].ID)
}

func TestStageMetadataParsing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "default",
			"label": "Sales",
			"stages": [
				{
					"id": "closedwon", "label": "Closed Won", "displayOrder": 0,
					"metadata": {"probability": "1.0", "isClosed": "true", "isWon": "true"}
				},
				{"id": "new", "label": "New", "displayOrder": 1, "metadata": {}}
			]
		}`))
	})

	p, err := c.GetPipeline(context.Background(), "deals", "default")
	require.NoError(t, err)

	won := p.Stages[0]
	require.NotNil(t, won.Probability)
	assert.Equal(t, 1.0, *won.Probability)
	require.NotNil(t, won.Closed)
	assert.True(t, *won.Closed)
	require.NotNil(t, won.Won)
	assert.True(t, *won.Won)

	fresh := p.Stages[1]
	assert.Nil(t, fresh.Probability, "absent metadata stays nil")
	assert.Nil(t, fresh.Closed)
	assert.Nil(t, fresh.Won)
}

func TestCreatePipelineEncodesStageMetadata(t *testing.T) {
	var gotBody rawPipeline
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id": "p1", "label": "Support", "stages": []}`))
	})

	prob := 0.25
	closed := false
	_, err := c.CreatePipeline(context.Background(), "tickets", domain.PipelineCreate{
		Label: "Support",
		Stages: []domain.StageCreate{
			{Label: "Triage", DisplayOrder: 0, Probability: &prob, Closed: &closed},
		},
	})
	require.NoError(t, err)

	require.Len(t, gotBody.Stages, 1)
	meta := gotBody.Stages[0].Metadata
	assert.Equal(t, "0.25", meta["probability"])
	assert.Equal(t, "false", meta["isClosed"])
	assert.NotContains(t, meta, "isWon", "unset flags are not sent")
}

func TestDeleteStagePath(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteStage(context.Background(), "deals", "default", "old-stage"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/crm/v3/pipelines/deals/default/stages/old-stage", gotPath)
}
