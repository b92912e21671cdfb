package meeting

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// Changed-field labels, in the order they are reported.
const (
	FieldTitle            = "title"
	FieldTeam             = "team"
	FieldOwner            = "owner"
	FieldTime             = "time"
	FieldDuration         = "duration"
	FieldLocation         = "location"
	FieldObjective        = "objective"
	FieldState            = "state"
	FieldDigest           = "digest"
	FieldLock             = "lock"
	FieldSentLabel        = "sent label"
	FieldAttendees        = "attendees"
	FieldAgenda           = "agenda"
	FieldNotes            = "notes"
	FieldOpenQuestions    = "open questions"
	FieldDecisions        = "decisions"
	FieldActions          = "actions"
	FieldDigestRecipients = "digest recipients"
	FieldDigestOptions    = "digest options"
)

// RestoredSentinel labels a restore whose snapshot matches the live meeting,
// so restores are never silently unaudited.
const RestoredSentinel = "restored snapshot"

// Diff is the result of comparing two normalized snapshots.
type Diff struct {
	Changed bool
	Fields  []string
}

// Compare performs order-sensitive deep equality per top-level field and
// reports which fields meaningfully changed. A nil previous snapshot is
// treated as the empty baseline.
func Compare(prev, next *entities.MeetingSnapshot) Diff {
	if prev == nil {
		empty, _ := Normalize(map[string]interface{}{})
		prev = empty
	}

	checks := []struct {
		label string
		equal bool
	}{
		{FieldTitle, prev.Title == next.Title},
		{FieldTeam, prev.Team == next.Team},
		{FieldOwner, prev.Owner == next.Owner},
		{FieldTime, prev.Time == next.Time},
		{FieldDuration, prev.DurationMinutes == next.DurationMinutes},
		{FieldLocation, prev.Location == next.Location},
		{FieldObjective, prev.Objective == next.Objective},
		{FieldState, prev.State == next.State},
		{FieldDigest, prev.Digest == next.Digest},
		{FieldLock, prev.Locked == next.Locked},
		{FieldSentLabel, prev.SentLabel == next.SentLabel},
		{FieldAttendees, reflect.DeepEqual(prev.Attendees, next.Attendees)},
		{FieldAgenda, reflect.DeepEqual(prev.AgendaItems, next.AgendaItems)},
		{FieldNotes, reflect.DeepEqual(prev.NoteSections, next.NoteSections)},
		{FieldOpenQuestions, reflect.DeepEqual(prev.OpenQuestions, next.OpenQuestions)},
		{FieldDecisions, reflect.DeepEqual(prev.Decisions, next.Decisions)},
		{FieldActions, reflect.DeepEqual(prev.Actions, next.Actions)},
		{FieldDigestRecipients, reflect.DeepEqual(prev.DigestRecipients, next.DigestRecipients)},
		{FieldDigestOptions, prev.DigestOptions == next.DigestOptions},
	}

	d := Diff{Fields: []string{}}
	for _, c := range checks {
		if !c.equal {
			d.Fields = append(d.Fields, c.label)
		}
	}
	d.Changed = len(d.Fields) > 0
	return d
}

// Summary derives a human-readable description of the diff.
func (d Diff) Summary() string {
	switch {
	case len(d.Fields) == 0:
		return "Saved meeting"
	case len(d.Fields) <= 3:
		return fmt.Sprintf("Updated %s", strings.Join(d.Fields, ", "))
	default:
		return fmt.Sprintf("Updated %s and %d more",
			strings.Join(d.Fields[:3], ", "), len(d.Fields)-3)
	}
}
