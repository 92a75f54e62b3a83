package domain

// AssociationTarget is one object linked from a source object, as returned
// by an association listing.
type AssociationTarget struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// AssociationLabel describes one legal link category between two object
// families, from the backend's association-type catalog.
type AssociationLabel struct {
	Category string `json:"category"`
	TypeID   int    `json:"typeId"`
	Label    string `json:"label,omitempty"`
}

// Owner is a read-only CRM user that records can be assigned to.
type Owner struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	UserID    int    `json:"userId,omitempty"`
	Archived  bool   `json:"archived,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// WebhookSubscription is a read-only webhook subscription registered for an
// app.
type WebhookSubscription struct {
	ID        string `json:"id"`
	EventType string `json:"eventType,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
}
