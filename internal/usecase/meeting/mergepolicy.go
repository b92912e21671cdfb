package meeting

import (
	"encoding/json"
	"reflect"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// MergeOwner identifies which side of the meeting/canonical split is
// authoritative for a field.
type MergeOwner string

const (
	OwnerMeeting   MergeOwner = "meeting"
	OwnerCanonical MergeOwner = "canonical"
)

// DecisionMergePolicy is the auditable merge-policy table for canonical
// decisions. Sync writes a field only when the meeting owns it; everything
// canonical-owned survives sync untouched.
var DecisionMergePolicy = map[string]MergeOwner{
	"title":        OwnerMeeting,
	"statement":    OwnerMeeting,
	"rationale":    OwnerMeeting,
	"owner":        OwnerMeeting,
	"ownerUid":     OwnerMeeting,
	"status":       OwnerMeeting,
	"tags":         OwnerMeeting,
	"description":  OwnerCanonical,
	"visibility":   OwnerCanonical,
	"supersedes":   OwnerCanonical,
	"supersededBy": OwnerCanonical,
}

// ActionMergePolicy is the merge-policy table for canonical actions.
var ActionMergePolicy = map[string]MergeOwner{
	"title":         OwnerMeeting,
	"owner":         OwnerMeeting,
	"ownerUid":      OwnerMeeting,
	"status":        OwnerMeeting,
	"priority":      OwnerMeeting,
	"project":       OwnerMeeting,
	"dueAt":         OwnerMeeting,
	"dueLabel":      OwnerMeeting,
	"dueSoon":       OwnerMeeting,
	"blockedReason": OwnerMeeting,
	"notes":         OwnerMeeting,
	"description":   OwnerCanonical,
	"decisionId":    OwnerCanonical,
	"completedAt":   OwnerCanonical,
}

// applyDecisionCopy merges the meeting-owned fields of a decision copy into
// a canonical decision, consulting the policy table per field. Returns true
// when any field value actually changed.
func applyDecisionCopy(d *entities.Decision, c entities.DecisionCopy) bool {
	changed := false

	setStr := func(field string, dst *string, val string) {
		if DecisionMergePolicy[field] != OwnerMeeting {
			return
		}
		if *dst != val {
			*dst = val
			changed = true
		}
	}

	setStr("title", &d.Title, c.Title)
	setStr("statement", &d.Statement, c.Statement)
	setStr("rationale", &d.Rationale, c.Rationale)
	setStr("owner", &d.Owner, c.Owner)
	setStr("ownerUid", &d.OwnerUID, c.OwnerUID)

	if DecisionMergePolicy["status"] == OwnerMeeting && d.Status != c.Status {
		d.Status = c.Status
		changed = true
	}

	if DecisionMergePolicy["tags"] == OwnerMeeting {
		current := decodeTags(d.Tags)
		next := c.Tags
		if next == nil {
			next = []string{}
		}
		if !reflect.DeepEqual(current, next) {
			if raw, err := json.Marshal(next); err == nil {
				d.Tags = raw
				changed = true
			}
		}
	}

	return changed
}

// applyActionCopy merges the meeting-owned fields of an action copy into a
// canonical action.
func applyActionCopy(a *entities.Action, c entities.ActionCopy) bool {
	changed := false

	setStr := func(field string, dst *string, val string) {
		if ActionMergePolicy[field] != OwnerMeeting {
			return
		}
		if *dst != val {
			*dst = val
			changed = true
		}
	}

	setStr("title", &a.Title, c.Title)
	setStr("owner", &a.Owner, c.Owner)
	setStr("ownerUid", &a.OwnerUID, c.OwnerUID)
	setStr("project", &a.Project, c.Project)
	setStr("dueAt", &a.DueAt, c.DueAt)
	setStr("dueLabel", &a.DueLabel, c.DueLabel)
	setStr("blockedReason", &a.BlockedReason, c.BlockedReason)
	setStr("notes", &a.Notes, c.Notes)

	if ActionMergePolicy["status"] == OwnerMeeting && a.Status != c.Status {
		a.Status = c.Status
		changed = true
	}
	if ActionMergePolicy["priority"] == OwnerMeeting && a.Priority != c.Priority {
		a.Priority = c.Priority
		changed = true
	}
	if ActionMergePolicy["dueSoon"] == OwnerMeeting && a.DueSoon != c.DueSoon {
		a.DueSoon = c.DueSoon
		changed = true
	}

	return changed
}

func decodeTags(raw []byte) []string {
	tags := []string{}
	if len(raw) == 0 {
		return tags
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return []string{}
	}
	return tags
}
