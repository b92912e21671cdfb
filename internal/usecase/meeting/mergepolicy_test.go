package meeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

func timeRef(t *testing.T) *time.Time {
	t.Helper()
	v := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &v
}

func TestApplyDecisionCopy_CanonicalFieldsSurvive(t *testing.T) {
	d := &entities.Decision{
		ID:           "dec-1",
		Title:        "Old title",
		Description:  "curated description",
		Visibility:   entities.VisibilityTeam,
		Supersedes:   "dec-0",
		SupersededBy: "dec-9",
		Status:       entities.DecisionStatusProposed,
		Tags:         []byte(`["infra"]`),
	}

	changed := applyDecisionCopy(d, entities.DecisionCopy{
		ID:        "dec-1",
		Title:     "New title",
		Statement: "We will ship weekly",
		Status:    entities.DecisionStatusAccepted,
		Tags:      []string{"infra", "process"},
	})

	assert.True(t, changed)
	assert.Equal(t, "New title", d.Title)
	assert.Equal(t, "We will ship weekly", d.Statement)
	assert.Equal(t, entities.DecisionStatusAccepted, d.Status)
	assert.JSONEq(t, `["infra","process"]`, string(d.Tags))

	// Canonical-owned fields are untouched by sync
	assert.Equal(t, "curated description", d.Description)
	assert.Equal(t, entities.VisibilityTeam, d.Visibility)
	assert.Equal(t, "dec-0", d.Supersedes)
	assert.Equal(t, "dec-9", d.SupersededBy)
}

func TestApplyDecisionCopy_NoChange(t *testing.T) {
	d := &entities.Decision{
		ID:     "dec-1",
		Title:  "Same",
		Status: entities.DecisionStatusProposed,
		Tags:   []byte(`[]`),
	}

	changed := applyDecisionCopy(d, entities.DecisionCopy{
		ID:     "dec-1",
		Title:  "Same",
		Status: entities.DecisionStatusProposed,
	})
	assert.False(t, changed)
}

func TestApplyActionCopy_CanonicalFieldsSurvive(t *testing.T) {
	completed := timeRef(t)
	a := &entities.Action{
		ID:          "act-1",
		Title:       "Old",
		Description: "long-form context",
		DecisionID:  "dec-1",
		CompletedAt: completed,
		Status:      entities.ActionStatusOpen,
		Priority:    entities.ActionPriorityMedium,
	}

	changed := applyActionCopy(a, entities.ActionCopy{
		ID:       "act-1",
		Title:    "New",
		Status:   entities.ActionStatusBlocked,
		Priority: entities.ActionPriorityHigh,
		DueSoon:  true,
		Notes:    "waiting on vendor",
	})

	assert.True(t, changed)
	assert.Equal(t, "New", a.Title)
	assert.Equal(t, entities.ActionStatusBlocked, a.Status)
	assert.Equal(t, entities.ActionPriorityHigh, a.Priority)
	assert.True(t, a.DueSoon)
	assert.Equal(t, "waiting on vendor", a.Notes)

	assert.Equal(t, "long-form context", a.Description)
	assert.Equal(t, "dec-1", a.DecisionID)
	assert.Equal(t, completed, a.CompletedAt)
}

func TestMergePolicyTables_CoverEveryAppliedField(t *testing.T) {
	for _, field := range []string{"title", "statement", "rationale", "owner", "ownerUid", "status", "tags"} {
		assert.Equal(t, OwnerMeeting, DecisionMergePolicy[field], field)
	}
	for _, field := range []string{"description", "visibility", "supersedes", "supersededBy"} {
		assert.Equal(t, OwnerCanonical, DecisionMergePolicy[field], field)
	}
	for _, field := range []string{"description", "decisionId", "completedAt"} {
		assert.Equal(t, OwnerCanonical, ActionMergePolicy[field], field)
	}
}
