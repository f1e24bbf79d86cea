package learning

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

// statePayload is the persisted shape of a learner state. This is the
// exact contract the persistence layer reads and writes.
type statePayload struct {
	DifficultyLevel     challenge.Level    `json:"difficulty_level"`
	CompletedChallenges []challenge.Result `json:"completed_challenges"`
}

// stateSchemaDef is the JSON schema persisted state must satisfy
// before it is decoded. Loading a payload with an unknown difficulty
// level name fails here rather than silently defaulting.
var stateSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"difficulty_level": map[string]any{
			"type": "string",
			"enum": []any{"BEGINNER", "INTERMEDIATE", "ADVANCED", "EXPERT"},
		},
		"completed_challenges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"challenge":    map[string]any{"type": "object"},
					"user_answer":  map[string]any{"type": "string"},
					"is_correct":   map[string]any{"type": "boolean"},
					"solving_time": map[string]any{"type": "number", "minimum": 0},
					"error_rate":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				},
				"required": []any{"challenge", "user_answer", "is_correct", "solving_time", "error_rate"},
			},
		},
	},
	"required":             []any{"difficulty_level", "completed_challenges"},
	"additionalProperties": false,
}

var (
	stateSchemaOnce sync.Once
	stateSchema     *jsonschema.Schema
	stateSchemaErr  error
)

// compiledStateSchema compiles the state schema once and caches it.
func compiledStateSchema() (*jsonschema.Schema, error) {
	stateSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal for a clean any representation.
		defBytes, err := json.Marshal(stateSchemaDef)
		if err != nil {
			stateSchemaErr = fmt.Errorf("marshal state schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			stateSchemaErr = fmt.Errorf("parse state schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://learning-state.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			stateSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		stateSchema, stateSchemaErr = c.Compile(schemaURL)
	})
	return stateSchema, stateSchemaErr
}

// Snapshot serializes the state to its persisted JSON shape:
// the difficulty level name plus the ordered completed-challenge
// records. The parallel tracking slices are not persisted; Restore
// rebuilds them from the records.
func (s *State) Snapshot() ([]byte, error) {
	payload := statePayload{
		DifficultyLevel:     s.Level,
		CompletedChallenges: s.Completed,
	}
	if payload.CompletedChallenges == nil {
		payload.CompletedChallenges = []challenge.Result{}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal learning state: %w", err)
	}
	return b, nil
}

// Restore decodes a persisted learner state. The payload is validated
// against the state schema first; malformed shapes and unknown
// difficulty-level names are errors, never silent defaults.
func Restore(data []byte) (*State, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid learning state JSON: %w", err)
	}

	schema, err := compiledStateSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("learning state failed schema validation: %w", err)
	}

	var payload statePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode learning state: %w", err)
	}

	s := &State{
		Level:     payload.DifficultyLevel,
		Completed: payload.CompletedChallenges,
	}
	for _, r := range s.Completed {
		s.SolvingTimes = append(s.SolvingTimes, r.SolvingTime)
		s.ErrorRates = append(s.ErrorRates, r.ErrorRate)
	}
	return s, nil
}
