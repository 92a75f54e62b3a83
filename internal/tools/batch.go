package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/domain"
	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

type batchReadInput struct {
	IDs        []string `json:"ids" jsonschema:"IDs of the objects to read"`
	Properties []string `json:"properties,omitempty" jsonschema:"optional explicit property names to return instead of the defaults"`
}

type batchCreateInput[C any] struct {
	Inputs []C `json:"inputs" jsonschema:"objects to create, at most 100 per call"`
}

type batchUpdateToolInput[U any] struct {
	Inputs []domain.BatchUpdateItem[U] `json:"inputs" jsonschema:"updates to apply, at most 100 per call"`
}

type batchArchiveInput struct {
	IDs []string `json:"ids" jsonschema:"IDs of the objects to archive, at most 100 per call"`
}

func batchSizeError(n int) *mcp.CallToolResult {
	return textError(fmt.Sprintf("Batch size %d exceeds the limit of %d inputs per call. Split the request into smaller batches.", n, maxBatchInputs))
}

func addBatchReadTool[T any](s *mcp.Server, name, desc string, fn func(context.Context, []string, []string) (*domain.BatchResult[T], error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in batchReadInput) (*mcp.CallToolResult, any, error) {
			if len(in.IDs) > maxBatchInputs {
				return batchSizeError(len(in.IDs)), nil, nil
			}
			res, err := fn(ctx, in.IDs, in.Properties)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(res), nil, nil
		})
}

func addBatchCreateTool[C, T any](s *mcp.Server, name, desc string, fn func(context.Context, []C) (*domain.BatchResult[T], error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in batchCreateInput[C]) (*mcp.CallToolResult, any, error) {
			if len(in.Inputs) > maxBatchInputs {
				return batchSizeError(len(in.Inputs)), nil, nil
			}
			res, err := fn(ctx, in.Inputs)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(res), nil, nil
		})
}

func addBatchUpdateTool[U, T any](s *mcp.Server, name, desc string, fn func(context.Context, []domain.BatchUpdateItem[U]) (*domain.BatchResult[T], error)) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in batchUpdateToolInput[U]) (*mcp.CallToolResult, any, error) {
			if len(in.Inputs) > maxBatchInputs {
				return batchSizeError(len(in.Inputs)), nil, nil
			}
			res, err := fn(ctx, in.Inputs)
			if err != nil {
				return errResult(err), nil, nil
			}
			return jsonResult(res), nil, nil
		})
}

func addBatchArchiveTool(s *mcp.Server, name, desc string, fn func(context.Context, []string) error) {
	mcp.AddTool(s, &mcp.Tool{Name: name, Description: desc},
		func(ctx context.Context, req *mcp.CallToolRequest, in batchArchiveInput) (*mcp.CallToolResult, any, error) {
			if len(in.IDs) > maxBatchInputs {
				return batchSizeError(len(in.IDs)), nil, nil
			}
			if err := fn(ctx, in.IDs); err != nil {
				return errResult(err), nil, nil
			}
			return textResult(fmt.Sprintf("Archived %d objects.", len(in.IDs))), nil, nil
		})
}

func registerBatch(s *mcp.Server, c *hubspot.Client) {
	addBatchReadTool(s, "hubspot_batch_read_contacts",
		"Read up to 100 contacts by ID in a single call.", c.BatchReadContacts)
	addBatchCreateTool(s, "hubspot_batch_create_contacts",
		"Create up to 100 contacts in a single call.", c.BatchCreateContacts)
	addBatchUpdateTool(s, "hubspot_batch_update_contacts",
		"Update up to 100 contacts in a single call.", c.BatchUpdateContacts)
	addBatchArchiveTool(s, "hubspot_batch_archive_contacts",
		"Archive up to 100 contacts in a single call.", c.BatchArchiveContacts)

	addBatchReadTool(s, "hubspot_batch_read_companies",
		"Read up to 100 companies by ID in a single call.", c.BatchReadCompanies)
	addBatchCreateTool(s, "hubspot_batch_create_companies",
		"Create up to 100 companies in a single call.", c.BatchCreateCompanies)
	addBatchUpdateTool(s, "hubspot_batch_update_companies",
		"Update up to 100 companies in a single call.", c.BatchUpdateCompanies)
	addBatchArchiveTool(s, "hubspot_batch_archive_companies",
		"Archive up to 100 companies in a single call.", c.BatchArchiveCompanies)

	addBatchReadTool(s, "hubspot_batch_read_deals",
		"Read up to 100 deals by ID in a single call.", c.BatchReadDeals)
	addBatchCreateTool(s, "hubspot_batch_create_deals",
		"Create up to 100 deals in a single call.", c.BatchCreateDeals)
	addBatchUpdateTool(s, "hubspot_batch_update_deals",
		"Update up to 100 deals in a single call.", c.BatchUpdateDeals)
	addBatchArchiveTool(s, "hubspot_batch_archive_deals",
		"Archive up to 100 deals in a single call.", c.BatchArchiveDeals)

	addBatchReadTool(s, "hubspot_batch_read_tickets",
		"Read up to 100 tickets by ID in a single call.", c.BatchReadTickets)
	addBatchCreateTool(s, "hubspot_batch_create_tickets",
		"Create up to 100 tickets in a single call. Association fields on the inputs are ignored.", c.BatchCreateTickets)
	addBatchUpdateTool(s, "hubspot_batch_update_tickets",
		"Update up to 100 tickets in a single call.", c.BatchUpdateTickets)
	addBatchArchiveTool(s, "hubspot_batch_archive_tickets",
		"Archive up to 100 tickets in a single call.", c.BatchArchiveTickets)
}
