package entities

// MeetingState represents the lifecycle state of a meeting
type MeetingState string

const (
	MeetingStateScheduled  MeetingState = "scheduled"
	MeetingStateInProgress MeetingState = "inProgress"
	MeetingStateCompleted  MeetingState = "completed"
)

// DigestStatus represents whether the meeting digest has been sent
type DigestStatus string

const (
	DigestStatusPending DigestStatus = "pending"
	DigestStatusSent    DigestStatus = "sent"
)

// AgendaState represents the state of a single agenda item
type AgendaState string

const (
	AgendaStateQueued AgendaState = "queued"
	AgendaStateActive AgendaState = "active"
	AgendaStateDone   AgendaState = "done"
)

// Attendee is an embedded meeting attendee entry
type Attendee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// AgendaItem is an embedded agenda entry
type AgendaItem struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Presenter       string      `json:"presenter,omitempty"`
	DurationMinutes int         `json:"duration_minutes"`
	State           AgendaState `json:"state"`
}

// NoteSection is an embedded free-form notes block
type NoteSection struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	Body    string `json:"body,omitempty"`
}

// OpenQuestion is an embedded unresolved question entry
type OpenQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	RaisedBy string `json:"raised_by,omitempty"`
	Resolved bool   `json:"resolved"`
}

// DecisionCopy is the transient copy of a canonical decision embedded in a
// meeting payload. It carries only the fields the meeting is authoritative
// for; canonical-owned fields (description, visibility, supersede links)
// never appear here.
type DecisionCopy struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Statement string         `json:"statement,omitempty"`
	Rationale string         `json:"rationale,omitempty"`
	Owner     string         `json:"owner,omitempty"`
	OwnerUID  string         `json:"owner_uid,omitempty"`
	Status    DecisionStatus `json:"status"`
	Tags      []string       `json:"tags,omitempty"`
}

// ActionCopy is the transient copy of a canonical action embedded in a
// meeting payload.
type ActionCopy struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Owner         string         `json:"owner,omitempty"`
	OwnerUID      string         `json:"owner_uid,omitempty"`
	Status        ActionStatus   `json:"status"`
	Priority      ActionPriority `json:"priority"`
	Project       string         `json:"project,omitempty"`
	DueAt         string         `json:"due_at,omitempty"`
	DueLabel      string         `json:"due_label,omitempty"`
	DueSoon       bool           `json:"due_soon"`
	BlockedReason string         `json:"blocked_reason,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// DigestOptions controls which sections a meeting digest includes
type DigestOptions struct {
	IncludeDecisions bool `json:"include_decisions"`
	IncludeActions   bool `json:"include_actions"`
	IncludeNotes     bool `json:"include_notes"`
}

// MeetingSnapshot is a fully normalized, structurally complete view of a
// meeting record. It is the unit the diff engine compares, the revision log
// stores, and the sync engine reads. Every field is default-filled; lists
// are never nil.
type MeetingSnapshot struct {
	Title            string         `json:"title"`
	Team             string         `json:"team"`
	Owner            string         `json:"owner"`
	Time             string         `json:"time"`
	DurationMinutes  int            `json:"duration_minutes"`
	Location         string         `json:"location"`
	Objective        string         `json:"objective"`
	State            MeetingState   `json:"state"`
	Digest           DigestStatus   `json:"digest"`
	SentLabel        string         `json:"sent_label"`
	Locked           bool           `json:"locked"`
	Attendees        []Attendee     `json:"attendees"`
	AgendaItems      []AgendaItem   `json:"agenda_items"`
	NoteSections     []NoteSection  `json:"note_sections"`
	OpenQuestions    []OpenQuestion `json:"open_questions"`
	Decisions        []DecisionCopy `json:"decisions"`
	Actions          []ActionCopy   `json:"actions"`
	DigestRecipients []string       `json:"digest_recipients"`
	DigestOptions    DigestOptions  `json:"digest_options"`
}
