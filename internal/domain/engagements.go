package domain

// Note is a CRM note engagement.
type Note struct {
	ID           string            `json:"id"`
	Body         string            `json:"body,omitempty"`
	Timestamp    string            `json:"timestamp,omitempty"`
	OwnerID      string            `json:"ownerId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
}

// NoteCreate holds the fields for creating a note. The association ID lists
// are linked sequentially after the note is created.
type NoteCreate struct {
	Body         string         `json:"body" jsonschema:"note body text"`
	Timestamp    string         `json:"timestamp,omitempty" jsonschema:"note timestamp, ISO 8601; defaults to now on the server"`
	OwnerID      string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	ContactIDs   []string       `json:"contactIds,omitempty" jsonschema:"contacts to associate with the note"`
	CompanyIDs   []string       `json:"companyIds,omitempty" jsonschema:"companies to associate with the note"`
	DealIDs      []string       `json:"dealIds,omitempty" jsonschema:"deals to associate with the note"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// NoteUpdate holds a partial update for a note.
type NoteUpdate struct {
	Body         *string        `json:"body,omitempty" jsonschema:"note body text"`
	Timestamp    *string        `json:"timestamp,omitempty" jsonschema:"note timestamp, ISO 8601"`
	OwnerID      *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// Meeting is a CRM meeting engagement.
type Meeting struct {
	ID           string            `json:"id"`
	Title        string            `json:"title,omitempty"`
	Body         string            `json:"body,omitempty"`
	StartTime    string            `json:"startTime,omitempty"`
	EndTime      string            `json:"endTime,omitempty"`
	Location     string            `json:"location,omitempty"`
	Outcome      string            `json:"outcome,omitempty"`
	OwnerID      string            `json:"ownerId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Archived     bool              `json:"archived,omitempty"`
}

// MeetingCreate holds the fields for creating a meeting. ContactIDs are
// linked sequentially after the meeting is created.
type MeetingCreate struct {
	Title        string         `json:"title" jsonschema:"meeting title"`
	Body         string         `json:"body,omitempty" jsonschema:"meeting description"`
	StartTime    string         `json:"startTime,omitempty" jsonschema:"start time, ISO 8601"`
	EndTime      string         `json:"endTime,omitempty" jsonschema:"end time, ISO 8601"`
	Location     string         `json:"location,omitempty" jsonschema:"meeting location"`
	Outcome      string         `json:"outcome,omitempty" jsonschema:"meeting outcome, e.g. COMPLETED"`
	OwnerID      string         `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	ContactIDs   []string       `json:"contactIds,omitempty" jsonschema:"contacts to associate with the meeting"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// MeetingUpdate holds a partial update for a meeting.
type MeetingUpdate struct {
	Title        *string        `json:"title,omitempty" jsonschema:"meeting title"`
	Body         *string        `json:"body,omitempty" jsonschema:"meeting description"`
	StartTime    *string        `json:"startTime,omitempty" jsonschema:"start time, ISO 8601"`
	EndTime      *string        `json:"endTime,omitempty" jsonschema:"end time, ISO 8601"`
	Location     *string        `json:"location,omitempty" jsonschema:"meeting location"`
	Outcome      *string        `json:"outcome,omitempty" jsonschema:"meeting outcome"`
	OwnerID      *string        `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	CustomFields map[string]any `json:"customFields,omitempty" jsonschema:"additional properties keyed by their HubSpot internal name"`
}

// ActivityType selects the underlying engagement object an activity is
// recorded as.
type ActivityType string

// Supported activity types.
const (
	ActivityCall  ActivityType = "call"
	ActivityEmail ActivityType = "email"
	ActivityNote  ActivityType = "note"
)

// Activity is a unified view over call, email, and note engagements.
type Activity struct {
	ID           string            `json:"id"`
	Type         ActivityType      `json:"type"`
	Title        string            `json:"title,omitempty"`
	Body         string            `json:"body,omitempty"`
	Direction    string            `json:"direction,omitempty"`
	Timestamp    string            `json:"timestamp,omitempty"`
	DurationMins int               `json:"durationMinutes,omitempty"`
	OwnerID      string            `json:"ownerId,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
}

// ActivityCreate holds the fields for logging an activity. Type picks the
// engagement object the activity is written to.
type ActivityCreate struct {
	Type         ActivityType `json:"type" jsonschema:"activity type: call, email, or note"`
	Title        string       `json:"title,omitempty" jsonschema:"activity title or email subject"`
	Body         string       `json:"body,omitempty" jsonschema:"activity body text"`
	Direction    string       `json:"direction,omitempty" jsonschema:"INBOUND or OUTBOUND, for calls and emails"`
	Timestamp    string       `json:"timestamp,omitempty" jsonschema:"activity timestamp, ISO 8601; defaults to now on the server"`
	DurationMins int          `json:"durationMinutes,omitempty" jsonschema:"call duration in minutes"`
	OwnerID      string       `json:"ownerId,omitempty" jsonschema:"ID of the owning user"`
	ContactID    string       `json:"contactId,omitempty" jsonschema:"contact to associate with the activity"`
}
