package meeting

import (
	"fmt"
	"strings"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// Normalize sanitizes an untrusted meeting payload into a structurally
// complete, default-filled snapshot. It returns nil only when the root
// payload is not a JSON object; malformed list items are dropped, never
// surfaced as errors. The second return value counts dropped items so
// callers can observe data loss.
func Normalize(payload interface{}) (*entities.MeetingSnapshot, int) {
	root, ok := payload.(map[string]interface{})
	if !ok {
		return nil, 0
	}

	dropped := 0
	snap := &entities.MeetingSnapshot{
		Title:           strField(root, "title", "Untitled meeting"),
		Team:            strField(root, "team", ""),
		Owner:           strField(root, "owner", ""),
		Time:            strField(root, "time", ""),
		DurationMinutes: intField(root, "duration_minutes", 0),
		Location:        strField(root, "location", ""),
		Objective:       strField(root, "objective", ""),
		State:           normalizeMeetingState(strField(root, "state", "")),
		Digest:          normalizeDigestStatus(strField(root, "digest", "")),
		SentLabel:       strField(root, "sent_label", ""),
		Locked:          boolField(root, "locked", false),
	}

	snap.Attendees = normalizeAttendees(listField(root, "attendees"), &dropped)
	snap.AgendaItems = normalizeAgendaItems(listField(root, "agenda_items"), &dropped)
	snap.NoteSections = normalizeNoteSections(listField(root, "note_sections"), &dropped)
	snap.OpenQuestions = normalizeOpenQuestions(listField(root, "open_questions"), &dropped)
	snap.Decisions = normalizeDecisions(listField(root, "decisions"), &dropped)
	snap.Actions = normalizeActions(listField(root, "actions"), &dropped)
	snap.DigestRecipients = normalizeRecipients(listField(root, "digest_recipients"), &dropped)
	snap.DigestOptions = normalizeDigestOptions(root["digest_options"])

	return snap, dropped
}

func normalizeAttendees(items []interface{}, dropped *int) []entities.Attendee {
	out := []entities.Attendee{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			*dropped++
			continue
		}
		name := strField(item, "name", "")
		if name == "" {
			*dropped++
			continue
		}
		out = append(out, entities.Attendee{
			ID:   itemID(item, "att", len(out)+1),
			Name: name,
			Role: strField(item, "role", ""),
		})
	}
	return out
}

func normalizeAgendaItems(items []interface{}, dropped *int) []entities.AgendaItem {
	out := []entities.AgendaItem{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			*dropped++
			continue
		}
		title := strField(item, "title", "")
		if title == "" {
			*dropped++
			continue
		}
		out = append(out, entities.AgendaItem{
			ID:              itemID(item, "ag", len(out)+1),
			Title:           title,
			Presenter:       strField(item, "presenter", ""),
			DurationMinutes: intField(item, "duration_minutes", 0),
			State:           normalizeAgendaState(strField(item, "state", "")),
		})
	}
	return out
}

func normalizeNoteSections(items []interface{}, dropped *int) []entities.NoteSection {
	out := []entities.NoteSection{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			*dropped++
			continue
		}
		heading := strField(item, "heading", "")
		if heading == "" {
			*dropped++
			continue
		}
		out = append(out, entities.NoteSection{
			ID:      itemID(item, "note", len(out)+1),
			Heading: heading,
			Body:    strField(item, "body", ""),
		})
	}
	return out
}

func normalizeOpenQuestions(items []interface{}, dropped *int) []entities.OpenQuestion {
	out := []entities.OpenQuestion{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			*dropped++
			continue
		}
		text := strField(item, "text", "")
		if text == "" {
			*dropped++
			continue
		}
		out = append(out, entities.OpenQuestion{
			ID:       itemID(item, "q", len(out)+1),
			Text:     text,
			RaisedBy: strField(item, "raised_by", ""),
			Resolved: boolField(item, "resolved", false),
		})
	}
	return out
}

func normalizeDecisions(items []interface{}, dropped *int) []entities.DecisionCopy {
	out := []entities.DecisionCopy{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			*dropped++
			continue
		}
		title := strField(item, "title", "")
		if title == "" {
			*dropped++
			continue
		}
		out = append(out, entities.DecisionCopy{
			ID:        itemID(item, "dec", len(out)+1),
			Title:     title,
			Statement: strField(item, "statement", ""),
			Rationale: strField(item, "rationale", ""),
			Owner:     strField(item, "owner", ""),
			OwnerUID:  strField(item, "owner_uid", ""),
			Status:    normalizeDecisionStatus(strField(item, "status", "")),
			Tags:      stringList(item["tags"]),
		})
	}
	return out
}

func normalizeActions(items []interface{}, dropped *int) []entities.ActionCopy {
	out := []entities.ActionCopy{}
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			*dropped++
			continue
		}
		title := strField(item, "title", "")
		if title == "" {
			*dropped++
			continue
		}
		out = append(out, entities.ActionCopy{
			ID:            itemID(item, "act", len(out)+1),
			Title:         title,
			Owner:         strField(item, "owner", ""),
			OwnerUID:      strField(item, "owner_uid", ""),
			Status:        normalizeActionStatus(strField(item, "status", "")),
			Priority:      normalizeActionPriority(strField(item, "priority", "")),
			Project:       strField(item, "project", ""),
			DueAt:         strField(item, "due_at", ""),
			DueLabel:      strField(item, "due_label", ""),
			DueSoon:       boolField(item, "due_soon", false),
			BlockedReason: strField(item, "blocked_reason", ""),
			Notes:         strField(item, "notes", ""),
		})
	}
	return out
}

func normalizeRecipients(items []interface{}, dropped *int) []string {
	out := []string{}
	for _, raw := range items {
		s, ok := raw.(string)
		if !ok {
			*dropped++
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*dropped++
			continue
		}
		out = append(out, s)
	}
	return out
}

func normalizeDigestOptions(raw interface{}) entities.DigestOptions {
	opts := entities.DigestOptions{
		IncludeDecisions: true,
		IncludeActions:   true,
		IncludeNotes:     false,
	}
	item, ok := raw.(map[string]interface{})
	if !ok {
		return opts
	}
	opts.IncludeDecisions = boolField(item, "include_decisions", opts.IncludeDecisions)
	opts.IncludeActions = boolField(item, "include_actions", opts.IncludeActions)
	opts.IncludeNotes = boolField(item, "include_notes", opts.IncludeNotes)
	return opts
}

// Enum fallbacks: unrecognized values collapse to a fixed default instead of
// failing the request.

func normalizeMeetingState(s string) entities.MeetingState {
	switch entities.MeetingState(s) {
	case entities.MeetingStateScheduled, entities.MeetingStateInProgress, entities.MeetingStateCompleted:
		return entities.MeetingState(s)
	}
	return entities.MeetingStateScheduled
}

func normalizeDigestStatus(s string) entities.DigestStatus {
	switch entities.DigestStatus(s) {
	case entities.DigestStatusPending, entities.DigestStatusSent:
		return entities.DigestStatus(s)
	}
	return entities.DigestStatusPending
}

func normalizeAgendaState(s string) entities.AgendaState {
	switch entities.AgendaState(s) {
	case entities.AgendaStateQueued, entities.AgendaStateActive, entities.AgendaStateDone:
		return entities.AgendaState(s)
	}
	return entities.AgendaStateQueued
}

func normalizeDecisionStatus(s string) entities.DecisionStatus {
	switch entities.DecisionStatus(s) {
	case entities.DecisionStatusProposed, entities.DecisionStatusAccepted,
		entities.DecisionStatusSuperseded, entities.DecisionStatusRejected:
		return entities.DecisionStatus(s)
	}
	return entities.DecisionStatusProposed
}

func normalizeActionStatus(s string) entities.ActionStatus {
	switch entities.ActionStatus(s) {
	case entities.ActionStatusOpen, entities.ActionStatusBlocked, entities.ActionStatusDone:
		return entities.ActionStatus(s)
	}
	return entities.ActionStatusOpen
}

func normalizeActionPriority(s string) entities.ActionPriority {
	switch entities.ActionPriority(s) {
	case entities.ActionPriorityHigh, entities.ActionPriorityMedium, entities.ActionPriorityLow:
		return entities.ActionPriority(s)
	}
	return entities.ActionPriorityMedium
}

// Field helpers. JSON numbers arrive as float64.

func strField(m map[string]interface{}, key, def string) string {
	if v, ok := m[key].(string); ok {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			return trimmed
		}
	}
	return def
}

func intField(m map[string]interface{}, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		if v >= 0 {
			return int(v)
		}
	case int:
		if v >= 0 {
			return v
		}
	}
	return def
}

func boolField(m map[string]interface{}, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func listField(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key].([]interface{}); ok {
		return v
	}
	return nil
}

func stringList(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := []string{}
	for _, item := range items {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// itemID returns the item's own id or a stable positional fallback.
func itemID(m map[string]interface{}, prefix string, index int) string {
	if id := strField(m, "id", ""); id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", prefix, index)
}
