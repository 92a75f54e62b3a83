package domain

// Pipeline is an ordered sequence of stages for one object family, such as
// the deals sales pipeline. Stages are always sorted ascending by
// DisplayOrder; the backend does not guarantee that order itself.
type Pipeline struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	DisplayOrder int     `json:"displayOrder"`
	Stages       []Stage `json:"stages"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
	Archived     bool    `json:"archived,omitempty"`
}

// Stage is a single step within a pipeline. Probability and the closed/won
// flags are carried as strings on the wire and parsed on read; absent
// metadata leaves them nil.
type Stage struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	DisplayOrder int      `json:"displayOrder"`
	Probability  *float64 `json:"probability,omitempty"`
	Closed       *bool    `json:"closed,omitempty"`
	Won          *bool    `json:"won,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
	Archived     bool     `json:"archived,omitempty"`
}

// PipelineCreate holds the fields for creating a pipeline.
type PipelineCreate struct {
	Label        string        `json:"label" jsonschema:"pipeline display label"`
	DisplayOrder int           `json:"displayOrder,omitempty" jsonschema:"position among the object family's pipelines"`
	Stages       []StageCreate `json:"stages" jsonschema:"initial stages, in display order"`
}

// PipelineUpdate holds a partial update for a pipeline.
type PipelineUpdate struct {
	Label        *string `json:"label,omitempty" jsonschema:"pipeline display label"`
	DisplayOrder *int    `json:"displayOrder,omitempty" jsonschema:"position among the object family's pipelines"`
}

// StageCreate holds the fields for creating a pipeline stage.
type StageCreate struct {
	Label        string   `json:"label" jsonschema:"stage display label"`
	DisplayOrder int      `json:"displayOrder,omitempty" jsonschema:"position within the pipeline"`
	Probability  *float64 `json:"probability,omitempty" jsonschema:"win probability between 0 and 1"`
	Closed       *bool    `json:"closed,omitempty" jsonschema:"whether the stage represents a closed state"`
	Won          *bool    `json:"won,omitempty" jsonschema:"whether the stage represents a won state"`
}

// StageUpdate holds a partial update for a pipeline stage.
type StageUpdate struct {
	Label        *string  `json:"label,omitempty" jsonschema:"stage display label"`
	DisplayOrder *int     `json:"displayOrder,omitempty" jsonschema:"position within the pipeline"`
	Probability  *float64 `json:"probability,omitempty" jsonschema:"win probability between 0 and 1"`
	Closed       *bool    `json:"closed,omitempty" jsonschema:"whether the stage represents a closed state"`
	Won          *bool    `json:"won,omitempty" jsonschema:"whether the stage represents a won state"`
}
