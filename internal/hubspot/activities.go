package hubspot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/johnwards/hubspot-mcp/internal/domain"
)

// Activities are a unified view over the call, email, and note engagement
// objects. Creation dispatches on the activity type; there is no unified
// listing endpoint on the backend, so ListActivities deliberately fetches
// calls only.

var callProperties = []string{
	"hs_call_title", "hs_call_body", "hs_call_direction", "hs_call_duration",
	"hs_timestamp", "hubspot_owner_id",
}

var callsAPI = objectAPI[domain.Activity, domain.ActivityCreate, struct{}]{
	typeName:     "calls",
	properties:   callProperties,
	encodeCreate: encodeCallCreate,
	decode:       decodeCall,
}

func encodeCallCreate(in domain.ActivityCreate) map[string]string {
	p := make(map[string]string)
	setIf(p, "hs_call_title", in.Title)
	setIf(p, "hs_call_body", in.Body)
	setIf(p, "hs_call_direction", in.Direction)
	setIf(p, "hs_timestamp", in.Timestamp)
	setIf(p, "hubspot_owner_id", in.OwnerID)
	if in.DurationMins > 0 {
		// The backend stores call duration in milliseconds.
		p["hs_call_duration"] = strconv.Itoa(in.DurationMins * 60_000)
	}
	return p
}

func decodeCall(raw rawObject) domain.Activity {
	p := raw.Properties
	a := domain.Activity{
		ID:           raw.ID,
		Type:         domain.ActivityCall,
		Title:        p["hs_call_title"],
		Body:         p["hs_call_body"],
		Direction:    p["hs_call_direction"],
		Timestamp:    p["hs_timestamp"],
		OwnerID:      p["hubspot_owner_id"],
		CustomFields: leftoverProps(p, callProperties),
		CreatedAt:    raw.CreatedAt,
		UpdatedAt:    raw.UpdatedAt,
	}
	if ms, err := strconv.Atoi(p["hs_call_duration"]); err == nil && ms > 0 {
		a.DurationMins = ms / 60_000
	}
	return a
}

var emailActivityProperties = []string{
	"hs_email_subject", "hs_email_text", "hs_email_direction",
	"hs_timestamp", "hubspot_owner_id",
}

var emailsAPI = objectAPI[domain.Activity, domain.ActivityCreate, struct{}]{
	typeName:   "emails",
	properties: emailActivityProperties,
	encodeCreate: func(in domain.ActivityCreate) map[string]string {
		p := make(map[string]string)
		setIf(p, "hs_email_subject", in.Title)
		setIf(p, "hs_email_text", in.Body)
		setIf(p, "hs_email_direction", in.Direction)
		setIf(p, "hs_timestamp", in.Timestamp)
		setIf(p, "hubspot_owner_id", in.OwnerID)
		return p
	},
	decode: func(raw rawObject) domain.Activity {
		p := raw.Properties
		return domain.Activity{
			ID:           raw.ID,
			Type:         domain.ActivityEmail,
			Title:        p["hs_email_subject"],
			Body:         p["hs_email_text"],
			Direction:    p["hs_email_direction"],
			Timestamp:    p["hs_timestamp"],
			OwnerID:      p["hubspot_owner_id"],
			CustomFields: leftoverProps(p, emailActivityProperties),
			CreatedAt:    raw.CreatedAt,
			UpdatedAt:    raw.UpdatedAt,
		}
	},
}

var noteActivityAPI = objectAPI[domain.Activity, domain.ActivityCreate, struct{}]{
	typeName:   "notes",
	properties: noteProperties,
	encodeCreate: func(in domain.ActivityCreate) map[string]string {
		p := make(map[string]string)
		setIf(p, "hs_note_body", in.Body)
		setIf(p, "hs_timestamp", in.Timestamp)
		setIf(p, "hubspot_owner_id", in.OwnerID)
		return p
	},
	decode: func(raw rawObject) domain.Activity {
		p := raw.Properties
		return domain.Activity{
			ID:           raw.ID,
			Type:         domain.ActivityNote,
			Body:         p["hs_note_body"],
			Timestamp:    p["hs_timestamp"],
			OwnerID:      p["hubspot_owner_id"],
			CustomFields: leftoverProps(p, noteProperties),
			CreatedAt:    raw.CreatedAt,
			UpdatedAt:    raw.UpdatedAt,
		}
	},
}

// CreateActivity logs an activity as a call, email, or note engagement,
// then links it to the contact named in the input. The link is not
// transactional with the create; see CreateTicket.
func (c *Client) CreateActivity(ctx context.Context, in domain.ActivityCreate) (*domain.Activity, error) {
	var (
		activity *domain.Activity
		err      error
		assocTy  int
	)
	switch in.Type {
	case domain.ActivityCall:
		activity, err = createObject(ctx, c, callsAPI, in)
		assocTy = assocCallToContact
	case domain.ActivityEmail:
		activity, err = createObject(ctx, c, emailsAPI, in)
		assocTy = assocEmailToContact
	case domain.ActivityNote:
		activity, err = createObject(ctx, c, noteActivityAPI, in)
		assocTy = assocNoteToContact
	default:
		return nil, fmt.Errorf("unsupported activity type %q", in.Type)
	}
	if err != nil {
		return nil, err
	}

	err = c.associateAll(ctx, activityTypeName(in.Type), activity.ID, []assocLink{
		{toType: "contacts", toID: in.ContactID, typeID: assocTy},
	})
	return activity, err
}

// ListActivities fetches one page of call activities. Emails and notes are
// not included: the backend has no unified activity listing, and calls are
// the only sub-type fetched by default.
func (c *Client) ListActivities(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.Activity], error) {
	return listObjects(ctx, c, callsAPI, opts)
}

func activityTypeName(t domain.ActivityType) string {
	switch t {
	case domain.ActivityCall:
		return "calls"
	case domain.ActivityEmail:
		return "emails"
	default:
		return "notes"
	}
}
