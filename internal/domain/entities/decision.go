package entities

import (
	"time"

	"gorm.io/datatypes"
)

// DecisionStatus represents the status of a canonical decision
type DecisionStatus string

const (
	DecisionStatusProposed   DecisionStatus = "proposed"
	DecisionStatusAccepted   DecisionStatus = "accepted"
	DecisionStatusSuperseded DecisionStatus = "superseded"
	DecisionStatusRejected   DecisionStatus = "rejected"
)

// Visibility represents who can see a canonical entity
type Visibility string

const (
	VisibilityWorkspace Visibility = "workspace"
	VisibilityTeam      Visibility = "team"
	VisibilityPrivate   Visibility = "private"
)

// Decision is the durable, independently addressable decision record. The
// provenance meeting owns a subset of its fields; the rest (description,
// visibility, supersede links) are managed outside meeting sync and must
// survive it.
type Decision struct {
	ID           string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	WorkspaceID  string         `gorm:"type:varchar(64);primaryKey;index" json:"workspace_id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Statement    string         `gorm:"type:text" json:"statement"`
	Rationale    string         `gorm:"type:text" json:"rationale"`
	Description  string         `gorm:"type:text" json:"description"`
	Owner        string         `gorm:"type:varchar(255)" json:"owner"`
	OwnerUID     string         `gorm:"type:varchar(64)" json:"owner_uid"`
	Status       DecisionStatus `gorm:"type:varchar(20);not null;default:'proposed'" json:"status"`
	Visibility   Visibility     `gorm:"type:varchar(20);not null;default:'workspace'" json:"visibility"`
	Tags         datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	MeetingID    string         `gorm:"type:varchar(64);index" json:"meeting_id"`
	Supersedes   string         `gorm:"type:varchar(64)" json:"supersedes,omitempty"`
	SupersededBy string         `gorm:"type:varchar(64)" json:"superseded_by,omitempty"`
	Archived     bool           `gorm:"default:false;index" json:"archived"`
	ArchivedAt   *time.Time     `json:"archived_at,omitempty"`
	ArchivedBy   string         `gorm:"type:varchar(64)" json:"archived_by,omitempty"`
	CreatedAt    time.Time      `gorm:"default:now()" json:"created_at"`
	CreatedBy    string         `gorm:"type:varchar(64)" json:"created_by"`
	UpdatedAt    time.Time      `gorm:"default:now()" json:"updated_at"`
	UpdatedBy    string         `gorm:"type:varchar(64)" json:"updated_by"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}

// Archive marks the decision as archived without destroying it
func (d *Decision) Archive(byUID string, at time.Time) {
	d.Archived = true
	d.ArchivedAt = &at
	d.ArchivedBy = byUID
}

// Unarchive clears the archived flag; editing an archived decision from its
// meeting implicitly revives it.
func (d *Decision) Unarchive() {
	d.Archived = false
	d.ArchivedAt = nil
	d.ArchivedBy = ""
}
