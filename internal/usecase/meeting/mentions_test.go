package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "nothing to see here", []string{}},
		{"single", "ping @alice about this", []string{"alice"}},
		{"dedup and order", "@bob then @alice then @bob again", []string{"bob", "alice"}},
		{"case folded", "@Alice and @ALICE", []string{"alice"}},
		{"punctuation handles", "cc @dev.ops and @on-call_1", []string{"dev.ops", "on-call_1"}},
		{"bare at ignored", "email me @ noon", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMentions(tt.text))
		})
	}
}

func TestNewMentions(t *testing.T) {
	assert.Equal(t, []string{"carol"},
		NewMentions("ask @alice", "ask @alice and @carol"))

	// Handles already present never re-fire
	assert.Empty(t, NewMentions("ask @alice", "ask @alice again"))

	// First write treats everything as new
	assert.Equal(t, []string{"alice", "bob"}, NewMentions("", "@alice @bob"))
}
