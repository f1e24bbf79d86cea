package challenge

import "fmt"

// UnsupportedKindError indicates a challenge kind that has no
// generator implemented.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported challenge kind: %q", string(e.Kind))
}
