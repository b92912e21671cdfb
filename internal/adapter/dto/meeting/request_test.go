package meeting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMeetingRequest_WireKeys(t *testing.T) {
	body := []byte(`{
		"meeting": {"title": "Sprint Planning"},
		"restoreFromRevisionId": "2f0c3a1e-8d5b-4f7a-9c6d-1e2b3a4c5d6e"
	}`)

	var req UpdateMeetingRequest
	require.NoError(t, json.Unmarshal(body, &req))

	assert.Equal(t, "2f0c3a1e-8d5b-4f7a-9c6d-1e2b3a4c5d6e", req.RestoreFromRevisionID)
	m, ok := req.Meeting.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sprint Planning", m["title"])
}
