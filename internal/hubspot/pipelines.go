package hubspot

import (
	"context"
	"net/http"
	"sort"
	"strconv"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// The backend represents stage probability and the closed/won flags as
// strings inside a metadata map; they are parsed to number/bool on every
// read and rendered back to strings on write. Stage order within a pipeline
// is not guaranteed by the backend, so every read re-sorts stages ascending
// by display order.

type rawStage struct {
	ID           string            `json:"id,omitempty"`
	Label        string            `json:"label"`
	DisplayOrder int               `json:"displayOrder"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
}

type rawPipeline struct {
	ID           string     `json:"id,omitempty"`
	Label        string     `json:"label"`
	DisplayOrder int        `json:"displayOrder"`
	Stages       []rawStage `json:"stages,omitempty"`
	Archived     bool       `json:"archived,omitempty"`
	CreatedAt    string     `json:"createdAt,omitempty"`
	UpdatedAt    string     `json:"updatedAt,omitempty"`
}

func pipelinesPath(objectType string) string {
	return "/crm/v3/pipelines/" + objectType
}

// ListPipelines fetches every pipeline for one object family, with stages
// sorted by display order.
func (c *Client) ListPipelines(ctx context.Context, objectType string) ([]domain.Pipeline, error) {
	var resp struct {
		Results []rawPipeline `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, pipelinesPath(objectType), nil, nil, &resp); err != nil {
		return nil, err
	}

	pipelines := make([]domain.Pipeline, len(resp.Results))
	for i, raw := range resp.Results {
		pipelines[i] = decodePipeline(raw)
	}
	return pipelines, nil
}

// GetPipeline fetches a single pipeline by ID, with stages sorted by
// display order.
func (c *Client) GetPipeline(ctx context.Context, objectType, id string) (*domain.Pipeline, error) {
	var raw rawPipeline
	if err := c.do(ctx, http.MethodGet, pipelinesPath(objectType)+"/"+id, nil, nil, &raw); err != nil {
		return nil, err
	}
	p := decodePipeline(raw)
	return &p, nil
}

// CreatePipeline creates a pipeline with its initial stages.
func (c *Client) CreatePipeline(ctx context.Context, objectType string, in domain.PipelineCreate) (*domain.Pipeline, error) {
	body := rawPipeline{
		Label:        in.Label,
		DisplayOrder: in.DisplayOrder,
		Stages:       make([]rawStage, len(in.Stages)),
	}
	for i, st := range in.Stages {
		body.Stages[i] = rawStage{
			Label:        st.Label,
			DisplayOrder: st.DisplayOrder,
			Metadata:     encodeStageMetadata(st.Probability, st.Closed, st.Won),
		}
	}

	var raw rawPipeline
	if err := c.do(ctx, http.MethodPost, pipelinesPath(objectType), nil, body, &raw); err != nil {
		return nil, err
	}
	p := decodePipeline(raw)
	return &p, nil
}

// UpdatePipeline applies a partial update to a pipeline's label or order.
func (c *Client) UpdatePipeline(ctx context.Context, objectType, id string, in domain.PipelineUpdate) (*domain.Pipeline, error) {
	body := make(map[string]any)
	if in.Label != nil {
		body["label"] = *in.Label
	}
	if in.DisplayOrder != nil {
		body["displayOrder"] = *in.DisplayOrder
	}

	var raw rawPipeline
	if err := c.do(ctx, http.MethodPatch, pipelinesPath(objectType)+"/"+id, nil, body, &raw); err != nil {
		return nil, err
	}
	p := decodePipeline(raw)
	return &p, nil
}

// DeletePipeline removes a pipeline.
func (c *Client) DeletePipeline(ctx context.Context, objectType, id string) error {
	return c.do(ctx, http.MethodDelete, pipelinesPath(objectType)+"/"+id, nil, nil, nil)
}

// CreateStage adds a stage to an existing pipeline.
func (c *Client) CreateStage(ctx context.Context, objectType, pipelineID string, in domain.StageCreate) (*domain.Stage, error) {
	body := rawStage{
		Label:        in.Label,
		DisplayOrder: in.DisplayOrder,
		Metadata:     encodeStageMetadata(in.Probability, in.Closed, in.Won),
	}

	var raw rawStage
	path := pipelinesPath(objectType) + "/" + pipelineID + "/stages"
	if err := c.do(ctx, http.MethodPost, path, nil, body, &raw); err != nil {
		return nil, err
	}
	st := decodeStage(raw)
	return &st, nil
}

// UpdateStage applies a partial update to a pipeline stage.
func (c *Client) UpdateStage(ctx context.Context, objectType, pipelineID, stageID string, in domain.StageUpdate) (*domain.Stage, error) {
	body := make(map[string]any)
	if in.Label != nil {
		body["label"] = *in.Label
	}
	if in.DisplayOrder != nil {
		body["displayOrder"] = *in.DisplayOrder
	}
	if meta := encodeStageMetadata(in.Probability, in.Closed, in.Won); len(meta) > 0 {
		body["metadata"] = meta
	}

	var raw rawStage
	path := pipelinesPath(objectType) + "/" + pipelineID + "/stages/" + stageID
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &raw); err != nil {
		return nil, err
	}
	st := decodeStage(raw)
	return &st, nil
}

// DeleteStage removes a stage from a pipeline.
func (c *Client) DeleteStage(ctx context.Context, objectType, pipelineID, stageID string) error {
	path := pipelinesPath(objectType) + "/" + pipelineID + "/stages/" + stageID
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func decodePipeline(raw rawPipeline) domain.Pipeline {
	p := domain.Pipeline{
		ID:           raw.ID,
		Label:        raw.Label,
		DisplayOrder: raw.DisplayOrder,
		Stages:       make([]domain.Stage, len(raw.Stages)),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
	for i, st := range raw.Stages {
		p.Stages[i] = decodeStage(st)
	}
	sort.SliceStable(p.Stages, func(i, j int) bool {
		return p.Stages[i].DisplayOrder < p.Stages[j].DisplayOrder
	})
	return p
}

func decodeStage(raw rawStage) domain.Stage {
	st := domain.Stage{
		ID:           raw.ID,
		Label:        raw.Label,
		DisplayOrder: raw.DisplayOrder,
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
	if v, ok := raw.Metadata["probability"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			st.Probability = &f
		}
	}
	if v, ok := raw.Metadata["isClosed"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			st.Closed = &b
		}
	}
	if v, ok := raw.Metadata["isWon"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			st.Won = &b
		}
	}
	return st
}

func encodeStageMetadata(probability *float64, closed, won *bool) map[string]string {
	meta := make(map[string]string)
	if probability != nil {
		meta["probability"] = strconv.FormatFloat(*probability, 'f', -1, 64)
	}
	if closed != nil {
		meta["isClosed"] = strconv.FormatBool(*closed)
	}
	if won != nil {
		meta["isWon"] = strconv.FormatBool(*won)
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
