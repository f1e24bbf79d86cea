package learning

import (
	"github.com/Surfer12/microarch-lab-conversions/internal/baseconv"
	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

// Evaluation is the graded outcome of one answer.
type Evaluation struct {
	Correct bool

	// ErrorRate is 0 for a correct answer, 1 otherwise.
	ErrorRate float64

	// CorrectAnswer is the rendered representation the answer was
	// graded against, for feedback display.
	CorrectAnswer string
}

// EvaluateAnswer computes the correct representation for the challenge
// and grades userAnswer by exact string equality, case-sensitive on
// the rendered digits. Equivalent alternate renderings (leading
// zeros, lowercase digits) grade incorrect; there is no partial
// credit. Conversion failures surface as-is.
func EvaluateAnswer(ch challenge.Challenge, userAnswer string) (*Evaluation, error) {
	conv, err := baseconv.Convert(ch.Value, ch.SourceBase, ch.TargetBase)
	if err != nil {
		return nil, err
	}

	correct := userAnswer == conv.Representation
	ev := &Evaluation{
		Correct:       correct,
		CorrectAnswer: conv.Representation,
	}
	if !correct {
		ev.ErrorRate = 1
	}
	return ev, nil
}
