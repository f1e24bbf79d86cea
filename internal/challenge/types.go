// Package challenge generates randomized base-conversion exercises
// parameterized by the learner's difficulty level.
package challenge

// Kind is the tagged challenge variant. Generation dispatches on Kind
// exhaustively; kinds without a generator fail with
// *UnsupportedKindError rather than silently producing nothing.
type Kind string

const (
	// KindBaseConversion is the implemented exercise variant: convert
	// a value between two randomly drawn bases.
	KindBaseConversion Kind = "base_conversion"

	// Declared but not yet implemented variants.
	KindComplexityEstimate Kind = "complexity_estimate"
	KindMetaLearning       Kind = "meta_learning"
	KindSkillAssessment    Kind = "skill_assessment"
)

// Challenge is a single generated exercise.
type Challenge struct {
	Kind       Kind    `json:"kind"`
	SourceBase int     `json:"source_base"`
	TargetBase int     `json:"target_base"`
	Value      string  `json:"value"`
	Level      Level   `json:"difficulty_level"`
	Complexity float64 `json:"complexity_score"`
}

// Result is the learner's submitted outcome for one challenge.
type Result struct {
	Challenge  Challenge `json:"challenge"`
	UserAnswer string    `json:"user_answer"`
	Correct    bool      `json:"is_correct"`

	// SolvingTime is how long the learner took, in seconds.
	SolvingTime float64 `json:"solving_time"`

	// ErrorRate is 0 or 1 under binary correctness grading.
	ErrorRate float64 `json:"error_rate"`
}
