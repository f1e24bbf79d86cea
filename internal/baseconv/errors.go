package baseconv

import "fmt"

// InvalidBaseError indicates one or both bases fall outside [2,36].
type InvalidBaseError struct {
	SourceBase int
	TargetBase int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf(
		"bases must be between %d and %d: source_base=%d, target_base=%d",
		MinBase, MaxBase, e.SourceBase, e.TargetBase,
	)
}

// DigitOutOfRangeError indicates a character whose digit value is not
// valid in the declared base (e.g. 'G' in base 16).
type DigitOutOfRangeError struct {
	Digit rune
	Base  int
}

func (e *DigitOutOfRangeError) Error() string {
	return fmt.Sprintf("digit %q is not valid in base %d", e.Digit, e.Base)
}
