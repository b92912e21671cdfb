package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// RevisionSource identifies what kind of operation produced a revision
type RevisionSource string

const (
	RevisionSourceMeetingUpdate RevisionSource = "meetingUpdate"
	RevisionSourceRestore       RevisionSource = "restore"
)

// RevisionEventType classifies a revision row
type RevisionEventType string

const (
	RevisionEventCreated  RevisionEventType = "created"
	RevisionEventUpdated  RevisionEventType = "updated"
	RevisionEventRestored RevisionEventType = "restored"
)

// MeetingRevision is one immutable row in a meeting's append-only revision
// log. Rows are written once and never mutated or removed, including by
// restores.
type MeetingRevision struct {
	ID                     string            `gorm:"type:uuid;primaryKey" json:"id"`
	MeetingID              string            `gorm:"type:varchar(64);not null;index:idx_revisions_meeting" json:"meeting_id"`
	WorkspaceID            string            `gorm:"type:varchar(64);not null;index:idx_revisions_meeting" json:"workspace_id"`
	Source                 RevisionSource    `gorm:"type:varchar(20);not null" json:"source"`
	EventType              RevisionEventType `gorm:"type:varchar(20);not null" json:"event_type"`
	ChangedFields          datatypes.JSON    `gorm:"type:jsonb;default:'[]'" json:"changed_fields"`
	Summary                string            `gorm:"type:text" json:"summary"`
	MeetingRevision        int               `gorm:"not null" json:"meeting_revision"`
	ActorUID               string            `gorm:"type:varchar(64)" json:"actor_uid"`
	ActorName              string            `gorm:"type:varchar(255)" json:"actor_name"`
	CapturedAt             time.Time         `gorm:"not null;index" json:"captured_at"`
	RestoredFromRevisionID *string           `gorm:"type:uuid" json:"restored_from_revision_id,omitempty"`
	Snapshot               datatypes.JSON    `gorm:"type:jsonb;not null" json:"snapshot"`
}

// TableName specifies the table name for MeetingRevision
func (MeetingRevision) TableName() string {
	return "meeting_revisions"
}

// DecodeSnapshot unmarshals the stored meeting snapshot
func (r *MeetingRevision) DecodeSnapshot() (*MeetingSnapshot, error) {
	var snap MeetingSnapshot
	if err := json.Unmarshal(r.Snapshot, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// DecodeChangedFields unmarshals the stored changed-field labels
func (r *MeetingRevision) DecodeChangedFields() ([]string, error) {
	fields := []string{}
	if len(r.ChangedFields) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(r.ChangedFields, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
