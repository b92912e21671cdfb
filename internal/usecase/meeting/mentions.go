package meeting

import (
	"context"
	"regexp"
	"strings"
	"time"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9][A-Za-z0-9_.-]*)`)

// MentionNotification is the emission contract for a mention alert. Delivery
// is best-effort; the engine fires and forgets.
type MentionNotification struct {
	EntityType          string    `json:"entity_type"`
	EntityID            string    `json:"entity_id"`
	Title               string    `json:"title"`
	Path                string    `json:"path"`
	Handle              string    `json:"handle"`
	MentionText         string    `json:"mention_text"`
	PreviousMentionText string    `json:"previous_mention_text"`
	ActorUID            string    `json:"actor_uid"`
	ActorName           string    `json:"actor_name"`
	Timestamp           time.Time `json:"timestamp"`
}

// MentionNotifier delivers mention notifications. Implementations must not
// block the sync loop beyond one bounded request.
type MentionNotifier interface {
	Notify(ctx context.Context, n MentionNotification) error
}

// NoopNotifier discards all notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, MentionNotification) error { return nil }

// ExtractMentions returns the unique @handles referenced in text, in order
// of first appearance.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	seen := map[string]bool{}
	out := []string{}
	for _, m := range matches {
		handle := strings.ToLower(m[1])
		if !seen[handle] {
			seen[handle] = true
			out = append(out, handle)
		}
	}
	return out
}

// NewMentions returns handles present in next but not in prev.
func NewMentions(prev, next string) []string {
	old := map[string]bool{}
	for _, h := range ExtractMentions(prev) {
		old[h] = true
	}
	out := []string{}
	for _, h := range ExtractMentions(next) {
		if !old[h] {
			out = append(out, h)
		}
	}
	return out
}
