package entities

import "time"

// ActionStatus represents the status of a canonical action
type ActionStatus string

const (
	ActionStatusOpen    ActionStatus = "open"
	ActionStatusBlocked ActionStatus = "blocked"
	ActionStatusDone    ActionStatus = "done"
)

// ActionPriority represents the priority of a canonical action
type ActionPriority string

const (
	ActionPriorityHigh   ActionPriority = "high"
	ActionPriorityMedium ActionPriority = "medium"
	ActionPriorityLow    ActionPriority = "low"
)

// Action is the durable, independently addressable action record. Its
// description and completion timestamp are canonical-owned and never
// clobbered by meeting sync.
type Action struct {
	ID            string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	WorkspaceID   string         `gorm:"type:varchar(64);primaryKey;index" json:"workspace_id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Owner         string         `gorm:"type:varchar(255)" json:"owner"`
	OwnerUID      string         `gorm:"type:varchar(64)" json:"owner_uid"`
	Status        ActionStatus   `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Priority      ActionPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Project       string         `gorm:"type:varchar(255)" json:"project"`
	DueAt         string         `gorm:"type:varchar(64)" json:"due_at"`
	DueLabel      string         `gorm:"type:varchar(255)" json:"due_label"`
	DueSoon       bool           `gorm:"default:false" json:"due_soon"`
	BlockedReason string         `gorm:"type:text" json:"blocked_reason"`
	Notes         string         `gorm:"type:text" json:"notes"`
	MeetingID     string         `gorm:"type:varchar(64);index" json:"meeting_id"`
	DecisionID    string         `gorm:"type:varchar(64)" json:"decision_id,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	Archived      bool           `gorm:"default:false;index" json:"archived"`
	ArchivedAt    *time.Time     `json:"archived_at,omitempty"`
	ArchivedBy    string         `gorm:"type:varchar(64)" json:"archived_by,omitempty"`
	CreatedAt     time.Time      `gorm:"default:now()" json:"created_at"`
	CreatedBy     string         `gorm:"type:varchar(64)" json:"created_by"`
	UpdatedAt     time.Time      `gorm:"default:now()" json:"updated_at"`
	UpdatedBy     string         `gorm:"type:varchar(64)" json:"updated_by"`
}

// TableName specifies the table name for Action
func (Action) TableName() string {
	return "actions"
}

// Archive marks the action as archived without destroying it
func (a *Action) Archive(byUID string, at time.Time) {
	a.Archived = true
	a.ArchivedAt = &at
	a.ArchivedBy = byUID
}

// Unarchive clears the archived flag
func (a *Action) Unarchive() {
	a.Archived = false
	a.ArchivedAt = nil
	a.ArchivedBy = ""
}
