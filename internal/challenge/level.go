package challenge

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Level is the learner's difficulty level. Levels are strictly ordered:
// Beginner < Intermediate < Advanced < Expert.
type Level int

const (
	Beginner Level = iota + 1
	Intermediate
	Advanced
	Expert
)

var (
	levelNames = [...]string{
		Beginner:     "BEGINNER",
		Intermediate: "INTERMEDIATE",
		Advanced:     "ADVANCED",
		Expert:       "EXPERT",
	}
	levelByName = map[string]Level{
		"BEGINNER":     Beginner,
		"INTERMEDIATE": Intermediate,
		"ADVANCED":     Advanced,
		"EXPERT":       Expert,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Level(0)
	_ json.Marshaler           = Level(0)
	_ json.Unmarshaler         = (*Level)(nil)
	_ encoding.TextMarshaler   = Level(0)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// Levels returns all levels in ascending order.
func Levels() []Level {
	return []Level{Beginner, Intermediate, Advanced, Expert}
}

// ParseLevel resolves a level name, case-insensitively. Unknown names
// are an error, never a silent default.
func ParseLevel(name string) (Level, error) {
	l, ok := levelByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown difficulty level: %q", name)
	}
	return l, nil
}

func (l Level) isValid() bool {
	return l >= Beginner && l <= Expert
}

// String returns the canonical uppercase name, or "Level(n)" for
// invalid values.
func (l Level) String() string {
	if l.isValid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Next returns the level one step up. Expert is a ceiling: advancing
// past it is a no-op.
func (l Level) Next() Level {
	if l < Expert {
		return l + 1
	}
	return Expert
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.isValid() {
		return nil, fmt.Errorf("invalid difficulty level: %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalJSON implements json.Marshaler. Level serializes as its name.
func (l Level) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid difficulty level: %s", data)
	}
	return l.UnmarshalText([]byte(s))
}
