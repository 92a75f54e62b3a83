package domain

// Property describes a CRM property definition: the schema of one field on
// an object family, not a value. The adapter passes these through without
// validating type/fieldType compatibility.
type Property struct {
	Name         string   `json:"name"`
	Label        string   `json:"label,omitempty"`
	Type         string   `json:"type,omitempty"`
	FieldType    string   `json:"fieldType,omitempty"`
	GroupName    string   `json:"groupName,omitempty"`
	Description  string   `json:"description,omitempty"`
	Options      []Option `json:"options,omitempty"`
	DisplayOrder int      `json:"displayOrder,omitempty"`
	Hidden       bool     `json:"hidden,omitempty"`
	Calculated   bool     `json:"calculated,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
	Archived     bool     `json:"archived,omitempty"`
}

// Option is a selectable value for enumeration properties.
type Option struct {
	Label        string `json:"label"`
	Value        string `json:"value"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
	Hidden       bool   `json:"hidden,omitempty"`
}

// PropertyCreate holds the fields for creating a property definition.
type PropertyCreate struct {
	Name        string   `json:"name" jsonschema:"internal property name"`
	Label       string   `json:"label" jsonschema:"display label"`
	Type        string   `json:"type" jsonschema:"data type: string, number, date, datetime, enumeration, or bool"`
	FieldType   string   `json:"fieldType" jsonschema:"UI field type: text, textarea, number, date, select, checkbox, etc."`
	GroupName   string   `json:"groupName" jsonschema:"property group the field belongs to"`
	Description string   `json:"description,omitempty" jsonschema:"description shown to users"`
	Options     []Option `json:"options,omitempty" jsonschema:"options for enumeration properties"`
}

// PropertyUpdate holds a partial update for a property definition.
type PropertyUpdate struct {
	Label       *string  `json:"label,omitempty" jsonschema:"display label"`
	Description *string  `json:"description,omitempty" jsonschema:"description shown to users"`
	GroupName   *string  `json:"groupName,omitempty" jsonschema:"property group the field belongs to"`
	Options     []Option `json:"options,omitempty" jsonschema:"replacement options for enumeration properties"`
	Hidden      *bool    `json:"hidden,omitempty" jsonschema:"hide the property in the UI"`
}

// PropertyGroup is a named grouping of related properties.
type PropertyGroup struct {
	Name         string `json:"name"`
	Label        string `json:"label,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
	Archived     bool   `json:"archived,omitempty"`
}

// PropertyGroupCreate holds the fields for creating a property group.
type PropertyGroupCreate struct {
	Name         string `json:"name" jsonschema:"internal group name"`
	Label        string `json:"label" jsonschema:"display label"`
	DisplayOrder int    `json:"displayOrder,omitempty" jsonschema:"position among the family's groups"`
}
