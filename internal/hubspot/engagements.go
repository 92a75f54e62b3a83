package hubspot

import (
	"context"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Notes and meetings, plus their association side effects on create.

var noteProperties = []string{
	"hs_note_body", "hs_timestamp", "hubspot_owner_id",
}

var notesAPI = objectAPI[domain.Note, domain.NoteCreate, domain.NoteUpdate]{
	typeName:   "notes",
	properties: noteProperties,
	encodeCreate: func(in domain.NoteCreate) map[string]string {
		p := make(map[string]string)
		setIf(p, "hs_note_body", in.Body)
		setIf(p, "hs_timestamp", in.Timestamp)
		setIf(p, "hubspot_owner_id", in.OwnerID)
		mergeCustom(p, in.CustomFields)
		return p
	},
	encodeUpdate: func(in domain.NoteUpdate) map[string]string {
		p := make(map[string]string)
		setPtr(p, "hs_note_body", in.Body)
		setPtr(p, "hs_timestamp", in.Timestamp)
		setPtr(p, "hubspot_owner_id", in.OwnerID)
		mergeCustom(p, in.CustomFields)
		return p
	},
	decode: decodeNote,
}

func decodeNote(raw rawObject) domain.Note {
	p := raw.Properties
	return domain.Note{
		ID:           raw.ID,
		Body:         p["hs_note_body"],
		Timestamp:    p["hs_timestamp"],
		OwnerID:      p["hubspot_owner_id"],
		CustomFields: leftoverProps(p, noteProperties),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
}

var meetingProperties = []string{
	"hs_meeting_title", "hs_meeting_body", "hs_meeting_start_time",
	"hs_meeting_end_time", "hs_meeting_location", "hs_meeting_outcome",
	"hubspot_owner_id",
}

var meetingsAPI = objectAPI[domain.Meeting, domain.MeetingCreate, domain.MeetingUpdate]{
	typeName:   "meetings",
	properties: meetingProperties,
	encodeCreate: func(in domain.MeetingCreate) map[string]string {
		p := make(map[string]string)
		setIf(p, "hs_meeting_title", in.Title)
		setIf(p, "hs_meeting_body", in.Body)
		setIf(p, "hs_meeting_start_time", in.StartTime)
		setIf(p, "hs_meeting_end_time", in.EndTime)
		setIf(p, "hs_meeting_location", in.Location)
		setIf(p, "hs_meeting_outcome", in.Outcome)
		setIf(p, "hubspot_owner_id", in.OwnerID)
		mergeCustom(p, in.CustomFields)
		return p
	},
	encodeUpdate: func(in domain.MeetingUpdate) map[string]string {
		p := make(map[string]string)
		setPtr(p, "hs_meeting_title", in.Title)
		setPtr(p, "hs_meeting_body", in.Body)
		setPtr(p, "hs_meeting_start_time", in.StartTime)
		setPtr(p, "hs_meeting_end_time", in.EndTime)
		setPtr(p, "hs_meeting_location", in.Location)
		setPtr(p, "hs_meeting_outcome", in.Outcome)
		setPtr(p, "hubspot_owner_id", in.OwnerID)
		mergeCustom(p, in.CustomFields)
		return p
	},
	decode: decodeMeeting,
}

func decodeMeeting(raw rawObject) domain.Meeting {
	p := raw.Properties
	return domain.Meeting{
		ID:           raw.ID,
		Title:        p["hs_meeting_title"],
		Body:         p["hs_meeting_body"],
		StartTime:    p["hs_meeting_start_time"],
		EndTime:      p["hs_meeting_end_time"],
		Location:     p["hs_meeting_location"],
		Outcome:      p["hs_meeting_outcome"],
		OwnerID:      p["hubspot_owner_id"],
		CustomFields: leftoverProps(p, meetingProperties),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
		Archived:     raw.Archived,
	}
}

// ListNotes fetches one page of notes.
func (c *Client) ListNotes(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Note], error) {
	return listObjects(ctx, c, notesAPI, opts)
}

// GetNote fetches a single note by ID.
func (c *Client) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	return getObject(ctx, c, notesAPI, id)
}

// CreateNote creates a note, then links it to every contact, company, and
// deal named in the input, sequentially. The links are not transactional
// with the create; when one fails, the note is still returned together with
// an *AssociationError and the remaining links are skipped.
func (c *Client) CreateNote(ctx context.Context, in domain.NoteCreate) (*domain.Note, error) {
	note, err := createObject(ctx, c, notesAPI, in)
	if err != nil {
		return nil, err
	}

	links := make([]assocLink, 0, len(in.ContactIDs)+len(in.CompanyIDs)+len(in.DealIDs))
	for _, id := range in.ContactIDs {
		links = append(links, assocLink{toType: "contacts", toID: id, typeID: assocNoteToContact})
	}
	for _, id := range in.CompanyIDs {
		links = append(links, assocLink{toType: "companies", toID: id, typeID: assocNoteToCompany})
	}
	for _, id := range in.DealIDs {
		links = append(links, assocLink{toType: "deals", toID: id, typeID: assocNoteToDeal})
	}
	err = c.associateAll(ctx, "notes", note.ID, links)
	return note, err
}

// UpdateNote applies a partial update to a note.
func (c *Client) UpdateNote(ctx context.Context, id string, in domain.NoteUpdate) (*domain.Note, error) {
	return updateObject(ctx, c, notesAPI, id, in)
}

// DeleteNote archives a note.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return deleteObject(ctx, c, notesAPI, id)
}

// ListMeetings fetches one page of meetings.
func (c *Client) ListMeetings(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Meeting], error) {
	return listObjects(ctx, c, meetingsAPI, opts)
}

// GetMeeting fetches a single meeting by ID.
func (c *Client) GetMeeting(ctx context.Context, id string) (*domain.Meeting, error) {
	return getObject(ctx, c, meetingsAPI, id)
}

// CreateMeeting creates a meeting, then links it to every contact named in
// the input, sequentially. The links are not transactional with the create;
// see CreateNote.
func (c *Client) CreateMeeting(ctx context.Context, in domain.MeetingCreate) (*domain.Meeting, error) {
	meeting, err := createObject(ctx, c, meetingsAPI, in)
	if err != nil {
		return nil, err
	}

	links := make([]assocLink, 0, len(in.ContactIDs))
	for _, id := range in.ContactIDs {
		links = append(links, assocLink{toType: "contacts", toID: id, typeID: assocMeetingToContact})
	}
	err = c.associateAll(ctx, "meetings", meeting.ID, links)
	return meeting, err
}

// UpdateMeeting applies a partial update to a meeting.
func (c *Client) UpdateMeeting(ctx context.Context, id string, in domain.MeetingUpdate) (*domain.Meeting, error) {
	return updateObject(ctx, c, meetingsAPI, id, in)
}

// DeleteMeeting archives a meeting.
func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	return deleteObject(ctx, c, meetingsAPI, id)
}
