package learning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewState()
	_, err := s.Submit(resultWith(20, 0.05))
	require.NoError(t, err)
	_, err = s.Submit(resultWith(60, 0.2))
	require.NoError(t, err)

	data, err := s.Snapshot()
	require.NoError(t, err)

	restored, err := Restore(data)
	require.NoError(t, err)

	assert.Equal(t, s.Level, restored.Level)
	assert.Equal(t, s.Completed, restored.Completed)
	assert.Equal(t, []float64{20, 60}, restored.SolvingTimes)
	assert.Equal(t, []float64{0.05, 0.2}, restored.ErrorRates)
}

func TestSnapshot_FreshStateSerializesEmptyHistory(t *testing.T) {
	data, err := NewState().Snapshot()
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.JSONEq(t, `"BEGINNER"`, string(payload["difficulty_level"]))
	assert.JSONEq(t, `[]`, string(payload["completed_challenges"]))
}

func TestRestore_UnknownLevelFails(t *testing.T) {
	_, err := Restore([]byte(`{"difficulty_level":"NOVICE","completed_challenges":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestRestore_MalformedPayloadFails(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{`},
		{"missing level", `{"completed_challenges":[]}`},
		{"missing history", `{"difficulty_level":"EXPERT"}`},
		{"numeric level", `{"difficulty_level":2,"completed_challenges":[]}`},
		{"unknown field", `{"difficulty_level":"EXPERT","completed_challenges":[],"streak":3}`},
		{"bad history entry", `{"difficulty_level":"EXPERT","completed_challenges":[{"user_answer":"FF"}]}`},
		{"error rate out of range", `{"difficulty_level":"EXPERT","completed_challenges":[{"challenge":{},"user_answer":"FF","is_correct":false,"solving_time":10,"error_rate":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestRestore_ValidPayload(t *testing.T) {
	data := `{
		"difficulty_level": "ADVANCED",
		"completed_challenges": [
			{
				"challenge": {
					"kind": "base_conversion",
					"source_base": 10,
					"target_base": 16,
					"value": "255",
					"difficulty_level": "ADVANCED",
					"complexity_score": 4.2
				},
				"user_answer": "FF",
				"is_correct": true,
				"solving_time": 12.5,
				"error_rate": 0
			}
		]
	}`

	s, err := Restore([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, challenge.Advanced, s.Level)
	require.Len(t, s.Completed, 1)
	assert.Equal(t, "FF", s.Completed[0].UserAnswer)
	assert.True(t, s.Completed[0].Correct)
	assert.Equal(t, []float64{12.5}, s.SolvingTimes)
	assert.Equal(t, []float64{0}, s.ErrorRates)
}
