package entities

import (
	"time"

	"gorm.io/datatypes"
)

// HistoryEntity identifies which canonical entity kind an event belongs to
type HistoryEntity string

const (
	HistoryEntityDecision HistoryEntity = "decision"
	HistoryEntityAction   HistoryEntity = "action"
)

// HistoryEventType classifies a history event
type HistoryEventType string

const (
	HistoryEventCreated  HistoryEventType = "created"
	HistoryEventUpdated  HistoryEventType = "updated"
	HistoryEventArchived HistoryEventType = "archived"
	HistoryEventRestored HistoryEventType = "restored"
)

// HistorySource identifies what produced a history event
type HistorySource string

const (
	HistorySourceMeetingSync HistorySource = "meetingSync"
	HistorySourceManual      HistorySource = "manual"
)

// EntityHistoryEvent is one write-once row in a canonical entity's
// append-only history log.
type EntityHistoryEvent struct {
	ID          string           `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string           `gorm:"type:varchar(64);not null;index:idx_history_entity" json:"workspace_id"`
	Entity      HistoryEntity    `gorm:"type:varchar(20);not null;index:idx_history_entity" json:"entity"`
	EntityID    string           `gorm:"type:varchar(64);not null;index:idx_history_entity" json:"entity_id"`
	EventType   HistoryEventType `gorm:"type:varchar(20);not null" json:"event_type"`
	Source      HistorySource    `gorm:"type:varchar(20);not null" json:"source"`
	ActorUID    string           `gorm:"type:varchar(64)" json:"actor_uid"`
	ActorName   string           `gorm:"type:varchar(255)" json:"actor_name"`
	Message     string           `gorm:"type:text" json:"message"`
	Metadata    datatypes.JSON   `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt   time.Time        `gorm:"not null;index" json:"created_at"`
}

// TableName specifies the table name for EntityHistoryEvent
func (EntityHistoryEvent) TableName() string {
	return "entity_history_events"
}
