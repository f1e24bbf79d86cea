package learning

import "fmt"

// InvalidResultError indicates a submitted result missing a required
// field or carrying an out-of-range value.
type InvalidResultError struct {
	Field  string
	Reason string
}

func (e *InvalidResultError) Error() string {
	return fmt.Sprintf("invalid challenge result: %s %s", e.Field, e.Reason)
}
