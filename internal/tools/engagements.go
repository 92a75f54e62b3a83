package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/johnwards/hubspot-mcp/internal/hubspot"
)

func registerEngagements(s *mcp.Server, c *hubspot.Client) {
	addListTool(s, "hubspot_list_notes",
		"List notes with cursor-based pagination.", c.ListNotes)
	addGetTool(s, "hubspot_get_note",
		"Get a single note by ID.", c.GetNote)
	addCreateTool(s, "hubspot_create_note",
		"Create a note, optionally attached to contacts, companies, or deals.", c.CreateNote)
	addUpdateTool(s, "hubspot_update_note",
		"Update an existing note. Only the fields provided are changed.", c.UpdateNote)
	addDeleteTool(s, "hubspot_delete_note",
		"Archive a note by ID.", c.DeleteNote)

	addListTool(s, "hubspot_list_meetings",
		"List meetings with cursor-based pagination.", c.ListMeetings)
	addGetTool(s, "hubspot_get_meeting",
		"Get a single meeting by ID.", c.GetMeeting)
	addCreateTool(s, "hubspot_create_meeting",
		"Create a meeting, optionally attached to contacts.", c.CreateMeeting)
	addUpdateTool(s, "hubspot_update_meeting",
		"Update an existing meeting. Only the fields provided are changed.", c.UpdateMeeting)
	addDeleteTool(s, "hubspot_delete_meeting",
		"Archive a meeting by ID.", c.DeleteMeeting)

	addCreateTool(s, "hubspot_create_activity",
		"Log an activity (call, email, or note) against a contact.", c.CreateActivity)
	addListTool(s, "hubspot_list_activities",
		"List logged call activities with cursor-based pagination.", c.ListActivities)
}
