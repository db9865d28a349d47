package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/checkin-reset/internal/model"
)

func TestEncodeSummary(t *testing.T) {
	b, err := encodeSummary(model.ResetSummary{RunID: "r1", Collection: "team", Found: 3, Flagged: 2, Updated: 1, Failed: 1})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, "r1", got["run_id"])
	require.Equal(t, float64(2), got["flagged"])
	_, hasErr := got["error"]
	require.False(t, hasErr, "error omitted when empty")
}

func TestNewRabbitPublisherBadURL(t *testing.T) {
	_, err := NewRabbitPublisher("not-a-url", DefaultQueue)
	require.Error(t, err)
}
