package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_NilPrevIsEmptyBaseline(t *testing.T) {
	next, _ := Normalize(map[string]interface{}{"title": "Kickoff"})
	d := Compare(nil, next)

	assert.True(t, d.Changed)
	assert.Equal(t, []string{FieldTitle}, d.Fields)
}

func TestCompare_Identical(t *testing.T) {
	payload := map[string]interface{}{
		"title": "Kickoff",
		"attendees": []interface{}{
			map[string]interface{}{"name": "Alice"},
		},
	}
	a, _ := Normalize(payload)
	b, _ := Normalize(payload)

	d := Compare(a, b)
	assert.False(t, d.Changed)
	assert.Empty(t, d.Fields)
}

func TestCompare_ListOrderIsSignificant(t *testing.T) {
	a, _ := Normalize(map[string]interface{}{
		"attendees": []interface{}{
			map[string]interface{}{"id": "a1", "name": "Alice"},
			map[string]interface{}{"id": "a2", "name": "Bob"},
		},
	})
	b, _ := Normalize(map[string]interface{}{
		"attendees": []interface{}{
			map[string]interface{}{"id": "a2", "name": "Bob"},
			map[string]interface{}{"id": "a1", "name": "Alice"},
		},
	})

	d := Compare(a, b)
	assert.True(t, d.Changed)
	assert.Equal(t, []string{FieldAttendees}, d.Fields)
}

func TestCompare_FieldLabels(t *testing.T) {
	a, _ := Normalize(map[string]interface{}{})
	b, _ := Normalize(map[string]interface{}{
		"title":      "Planning",
		"team":       "Platform",
		"sent_label": "Sent Tuesday",
		"locked":     true,
		"open_questions": []interface{}{
			map[string]interface{}{"text": "Budget?"},
		},
	})

	d := Compare(a, b)
	assert.Equal(t, []string{
		FieldTitle, FieldTeam, FieldLock, FieldSentLabel, FieldOpenQuestions,
	}, d.Fields)
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{"empty", []string{}, "Saved meeting"},
		{"one", []string{"title"}, "Updated title"},
		{"three", []string{"title", "team", "agenda"}, "Updated title, team, agenda"},
		{"many", []string{"title", "team", "agenda", "notes", "actions"}, "Updated title, team, agenda and 2 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diff{Changed: len(tt.fields) > 0, Fields: tt.fields}
			assert.Equal(t, tt.want, d.Summary())
		})
	}
}
