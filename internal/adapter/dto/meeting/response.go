package meeting

import (
	"time"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// MeetingResponse represents a meeting document in responses
type MeetingResponse struct {
	ID               string                  `json:"id"`
	WorkspaceID      string                  `json:"workspace_id"`
	Title            string                  `json:"title"`
	Team             string                  `json:"team"`
	Owner            string                  `json:"owner"`
	Time             string                  `json:"time"`
	DurationMinutes  int                     `json:"duration_minutes"`
	Location         string                  `json:"location"`
	Objective        string                  `json:"objective"`
	State            entities.MeetingState   `json:"state"`
	Digest           entities.DigestStatus   `json:"digest"`
	SentLabel        string                  `json:"sent_label"`
	Locked           bool                    `json:"locked"`
	Revision         int                     `json:"revision"`
	Attendees        []entities.Attendee     `json:"attendees"`
	AgendaItems      []entities.AgendaItem   `json:"agenda_items"`
	NoteSections     []entities.NoteSection  `json:"note_sections"`
	OpenQuestions    []entities.OpenQuestion `json:"open_questions"`
	Decisions        []entities.DecisionCopy `json:"decisions"`
	Actions          []entities.ActionCopy   `json:"actions"`
	DigestRecipients []string                `json:"digest_recipients"`
	DigestOptions    entities.DigestOptions  `json:"digest_options"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
	UpdatedBy        string                  `json:"updated_by"`
}

// UpdateMeetingResponse represents the outcome of a meeting sync
type UpdateMeetingResponse struct {
	Meeting       *MeetingResponse `json:"meeting"`
	RevisionID    string           `json:"revision_id,omitempty"`
	Revision      int              `json:"revision"`
	EventType     string           `json:"event_type"`
	ChangedFields []string         `json:"changed_fields"`
	Summary       string           `json:"summary"`
	NoOp          bool             `json:"no_op"`
	DroppedItems  int              `json:"dropped_items,omitempty"`
	RestoredFrom  string           `json:"restored_from,omitempty"`
}

// RevisionResponse represents a revision log row; the full snapshot is
// only included when a single revision is fetched.
type RevisionResponse struct {
	ID                     string                     `json:"id"`
	MeetingID              string                     `json:"meeting_id"`
	WorkspaceID            string                     `json:"workspace_id"`
	Source                 entities.RevisionSource    `json:"source"`
	EventType              entities.RevisionEventType `json:"event_type"`
	ChangedFields          []string                   `json:"changed_fields"`
	Summary                string                     `json:"summary"`
	MeetingRevision        int                        `json:"meeting_revision"`
	ActorUID               string                     `json:"actor_uid"`
	ActorName              string                     `json:"actor_name"`
	CapturedAt             time.Time                  `json:"captured_at"`
	RestoredFromRevisionID string                     `json:"restored_from_revision_id,omitempty"`
	Snapshot               *entities.MeetingSnapshot  `json:"snapshot,omitempty"`
}

// DecisionResponse represents a canonical decision in responses
type DecisionResponse struct {
	ID           string                  `json:"id"`
	WorkspaceID  string                  `json:"workspace_id"`
	Title        string                  `json:"title"`
	Statement    string                  `json:"statement"`
	Rationale    string                  `json:"rationale"`
	Description  string                  `json:"description"`
	Owner        string                  `json:"owner"`
	OwnerUID     string                  `json:"owner_uid"`
	Status       entities.DecisionStatus `json:"status"`
	Visibility   entities.Visibility     `json:"visibility"`
	Tags         []string                `json:"tags"`
	MeetingID    string                  `json:"meeting_id"`
	Supersedes   string                  `json:"supersedes,omitempty"`
	SupersededBy string                  `json:"superseded_by,omitempty"`
	Archived     bool                    `json:"archived"`
	ArchivedAt   *time.Time              `json:"archived_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// ActionResponse represents a canonical action in responses
type ActionResponse struct {
	ID            string                  `json:"id"`
	WorkspaceID   string                  `json:"workspace_id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Owner         string                  `json:"owner"`
	OwnerUID      string                  `json:"owner_uid"`
	Status        entities.ActionStatus   `json:"status"`
	Priority      entities.ActionPriority `json:"priority"`
	Project       string                  `json:"project"`
	DueAt         string                  `json:"due_at"`
	DueLabel      string                  `json:"due_label"`
	DueSoon       bool                    `json:"due_soon"`
	BlockedReason string                  `json:"blocked_reason"`
	Notes         string                  `json:"notes"`
	MeetingID     string                  `json:"meeting_id"`
	DecisionID    string                  `json:"decision_id,omitempty"`
	CompletedAt   *time.Time              `json:"completed_at,omitempty"`
	Archived      bool                    `json:"archived"`
	ArchivedAt    *time.Time              `json:"archived_at,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// HistoryEventResponse represents one entity history event in responses
type HistoryEventResponse struct {
	ID        string                    `json:"id"`
	Entity    entities.HistoryEntity    `json:"entity"`
	EntityID  string                    `json:"entity_id"`
	EventType entities.HistoryEventType `json:"event_type"`
	Source    entities.HistorySource    `json:"source"`
	ActorUID  string                    `json:"actor_uid"`
	ActorName string                    `json:"actor_name"`
	Message   string                    `json:"message"`
	Metadata  map[string]interface{}    `json:"metadata,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}
