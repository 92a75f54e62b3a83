package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/domain"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

type pipelineIDInput struct {
	ObjectType string `json:"objectType" jsonschema:"object family the pipeline belongs to, e.g. deals or tickets"`
	PipelineID string `json:"pipelineId" jsonschema:"ID of the pipeline"`
}

type createPipelineInput struct {
	ObjectType string                `json:"objectType" jsonschema:"object family the pipeline belongs to, e.g. deals or tickets"`
	Pipeline   domain.PipelineCreate `json:"pipeline" jsonschema:"pipeline definition including its stages"`
}

type updatePipelineInput struct {
	ObjectType string                `json:"objectType" jsonschema:"object family the pipeline belongs to"`
	PipelineID string                `json:"pipelineId" jsonschema:"ID of the pipeline"`
	Fields     domain.PipelineUpdate `json:"fields" jsonschema:"fields to change"`
}

type createStageInput struct {
	ObjectType string             `json:"objectType" jsonschema:"object family the pipeline belongs to"`
	PipelineID string             `json:"pipelineId" jsonschema:"ID of the pipeline"`
	Stage      domain.StageCreate `json:"stage" jsonschema:"stage definition"`
}

type updateStageInput struct {
	ObjectType string             `json:"objectType" jsonschema:"object family the pipeline belongs to"`
	PipelineID string             `json:"pipelineId" jsonschema:"ID of the pipeline"`
	StageID    string             `json:"stageId" jsonschema:"ID of the stage"`
	Fields     domain.StageUpdate `json:"fields" jsonschema:"fields to change"`
}

type stageIDInput struct {
	ObjectType string `json:"objectType" jsonschema:"object family the pipeline belongs to"`
	PipelineID string `json:"pipelineId" jsonschema:"ID of the pipeline"`
	StageID    string `json:"stageId" jsonschema:"ID of the stage"`
}

func registerPipelines(s *mcp.Server, c *hubspot.Client) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_list_pipelines",
		Description: "List the pipelines defined for an object family, stages in display order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in objectTypeInput) (*mcp.CallToolResult, any, error) {
		pipelines, err := c.ListPipelines(ctx, in.ObjectType)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(pipelines), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_get_pipeline",
		Description: "Get a single pipeline and its stages.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pipelineIDInput) (*mcp.CallToolResult, any, error) {
		p, err := c.GetPipeline(ctx, in.ObjectType, in.PipelineID)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(p), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_create_pipeline",
		Description: "Create a pipeline with its initial stages.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createPipelineInput) (*mcp.CallToolResult, any, error) {
		p, err := c.CreatePipeline(ctx, in.ObjectType, in.Pipeline)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(p), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_update_pipeline",
		Description: "Update a pipeline's label or display order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updatePipelineInput) (*mcp.CallToolResult, any, error) {
		p, err := c.UpdatePipeline(ctx, in.ObjectType, in.PipelineID, in.Fields)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(p), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_delete_pipeline",
		Description: "Delete a pipeline.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pipelineIDInput) (*mcp.CallToolResult, any, error) {
		if err := c.DeletePipeline(ctx, in.ObjectType, in.PipelineID); err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Deleted pipeline %s.", in.PipelineID)), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_create_pipeline_stage",
		Description: "Add a stage to an existing pipeline.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createStageInput) (*mcp.CallToolResult, any, error) {
		st, err := c.CreateStage(ctx, in.ObjectType, in.PipelineID, in.Stage)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(st), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_update_pipeline_stage",
		Description: "Update a pipeline stage's label, display order, or metadata.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in updateStageInput) (*mcp.CallToolResult, any, error) {
		st, err := c.UpdateStage(ctx, in.ObjectType, in.PipelineID, in.StageID, in.Fields)
		if err != nil {
			return errResult(err), nil, nil
		}
		return jsonResult(st), nil, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "hubspot_delete_pipeline_stage",
		Description: "Remove a stage from a pipeline.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in stageIDInput) (*mcp.CallToolResult, any, error) {
		if err := c.DeleteStage(ctx, in.ObjectType, in.PipelineID, in.StageID); err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Deleted stage %s from pipeline %s.", in.StageID, in.PipelineID)), nil, nil
	})
}
