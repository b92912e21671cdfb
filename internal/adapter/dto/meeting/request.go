package meeting

// UpdateMeetingRequest represents the request to sync a meeting document.
// The meeting payload is accepted as-is and normalized server-side; when
// RestoreFromRevisionID is set the payload is ignored and the stored
// snapshot is replayed instead.
type UpdateMeetingRequest struct {
	Meeting               interface{} `json:"meeting,omitempty"`
	RestoreFromRevisionID string      `json:"restoreFromRevisionId,omitempty" validate:"omitempty,uuid"`
}

// ListRevisionsRequest represents query parameters for listing revisions
type ListRevisionsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// ListEntitiesRequest represents query parameters for listing decisions
// or actions within a workspace
type ListEntitiesRequest struct {
	MeetingID       string `query:"meeting_id"`
	IncludeArchived bool   `query:"include_archived"`
	Limit           int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset          int    `query:"offset" validate:"omitempty,min=0"`
}
