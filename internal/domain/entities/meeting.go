package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Meeting is the persisted meeting root document. Scalar fields live in
// columns; embedded ordered lists are JSONB. A meeting is created on its
// first successful update and never hard-deleted.
type Meeting struct {
	ID               string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	WorkspaceID      string         `gorm:"type:varchar(64);primaryKey;index" json:"workspace_id"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`
	Team             string         `gorm:"type:varchar(255)" json:"team"`
	Owner            string         `gorm:"type:varchar(255)" json:"owner"`
	Time             string         `gorm:"type:varchar(64)" json:"time"`
	DurationMinutes  int            `gorm:"default:0" json:"duration_minutes"`
	Location         string         `gorm:"type:varchar(255)" json:"location"`
	Objective        string         `gorm:"type:text" json:"objective"`
	State            MeetingState   `gorm:"type:varchar(20);not null;default:'scheduled'" json:"state"`
	Digest           DigestStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"digest"`
	SentLabel        string         `gorm:"type:varchar(255)" json:"sent_label"`
	Locked           bool           `gorm:"default:false" json:"locked"`
	Revision         int            `gorm:"not null;default:0" json:"revision"`
	Attendees        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"attendees"`
	AgendaItems      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"agenda_items"`
	NoteSections     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"note_sections"`
	OpenQuestions    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"open_questions"`
	Decisions        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"decisions"`
	Actions          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"actions"`
	DigestRecipients datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"digest_recipients"`
	DigestOptions    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"digest_options"`
	CreatedAt        time.Time      `gorm:"default:now()" json:"created_at"`
	CreatedBy        string         `gorm:"type:varchar(64)" json:"created_by"`
	UpdatedAt        time.Time      `gorm:"default:now()" json:"updated_at"`
	UpdatedBy        string         `gorm:"type:varchar(64)" json:"updated_by"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// Snapshot decodes the stored JSONB lists back into a normalized snapshot.
func (m *Meeting) Snapshot() (*MeetingSnapshot, error) {
	snap := &MeetingSnapshot{
		Title:            m.Title,
		Team:             m.Team,
		Owner:            m.Owner,
		Time:             m.Time,
		DurationMinutes:  m.DurationMinutes,
		Location:         m.Location,
		Objective:        m.Objective,
		State:            m.State,
		Digest:           m.Digest,
		SentLabel:        m.SentLabel,
		Locked:           m.Locked,
		Attendees:        []Attendee{},
		AgendaItems:      []AgendaItem{},
		NoteSections:     []NoteSection{},
		OpenQuestions:    []OpenQuestion{},
		Decisions:        []DecisionCopy{},
		Actions:          []ActionCopy{},
		DigestRecipients: []string{},
	}

	for _, f := range []struct {
		raw  datatypes.JSON
		dest interface{}
	}{
		{m.Attendees, &snap.Attendees},
		{m.AgendaItems, &snap.AgendaItems},
		{m.NoteSections, &snap.NoteSections},
		{m.OpenQuestions, &snap.OpenQuestions},
		{m.Decisions, &snap.Decisions},
		{m.Actions, &snap.Actions},
		{m.DigestRecipients, &snap.DigestRecipients},
		{m.DigestOptions, &snap.DigestOptions},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dest); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

// ApplySnapshot writes a normalized snapshot into the meeting columns.
// The revision counter is left untouched; the caller owns it.
func (m *Meeting) ApplySnapshot(snap *MeetingSnapshot) error {
	m.Title = snap.Title
	m.Team = snap.Team
	m.Owner = snap.Owner
	m.Time = snap.Time
	m.DurationMinutes = snap.DurationMinutes
	m.Location = snap.Location
	m.Objective = snap.Objective
	m.State = snap.State
	m.Digest = snap.Digest
	m.SentLabel = snap.SentLabel
	m.Locked = snap.Locked

	for _, f := range []struct {
		src  interface{}
		dest *datatypes.JSON
	}{
		{snap.Attendees, &m.Attendees},
		{snap.AgendaItems, &m.AgendaItems},
		{snap.NoteSections, &m.NoteSections},
		{snap.OpenQuestions, &m.OpenQuestions},
		{snap.Decisions, &m.Decisions},
		{snap.Actions, &m.Actions},
		{snap.DigestRecipients, &m.DigestRecipients},
		{snap.DigestOptions, &m.DigestOptions},
	} {
		raw, err := json.Marshal(f.src)
		if err != nil {
			return err
		}
		*f.dest = raw
	}

	return nil
}

// IsLocked checks if the meeting is locked against edits
func (m *Meeting) IsLocked() bool {
	return m.Locked
}
