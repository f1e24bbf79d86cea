// Package learning owns the adaptive difficulty state machine and the
// learner-session aggregate built on top of it.
package learning

import (
	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

// Difficulty transition thresholds, in seconds and error-rate units.
// The rule inspects only the most recently submitted result.
const (
	// AdvanceTimeLimit and AdvanceErrorLimit gate level advancement:
	// solving faster than the time limit with an error rate under the
	// error limit moves the learner up one level.
	AdvanceTimeLimit  = 30.0
	AdvanceErrorLimit = 0.1

	// ResetTimeLimit and ResetErrorLimit gate the hard reset: solving
	// slower than the time limit or erring above the error limit
	// drops the learner back to Beginner with a fresh start.
	ResetTimeLimit  = 120.0
	ResetErrorLimit = 0.3
)

// State is the per-learner session aggregate: the current difficulty
// level plus the full history of completed challenges. One State
// belongs to one caller; it carries no internal synchronization.
type State struct {
	// Level is the current difficulty level.
	Level challenge.Level

	// Completed is the append-only, insertion-ordered result history.
	Completed []challenge.Result

	// SolvingTimes and ErrorRates mirror Completed entry-for-entry.
	// Only the latest entry drives difficulty transitions; a hard
	// reset discards both slices.
	SolvingTimes []float64
	ErrorRates   []float64
}

// NewState creates a fresh session state at Beginner with no history.
func NewState() *State {
	return &State{Level: challenge.Beginner}
}

// NewStateAt creates a fresh session state at the given level.
func NewStateAt(level challenge.Level) *State {
	return &State{Level: level}
}

// Update appends the result to the history and tracking slices, then
// applies the difficulty transition rule.
func (s *State) Update(result challenge.Result) {
	s.Completed = append(s.Completed, result)
	s.SolvingTimes = append(s.SolvingTimes, result.SolvingTime)
	s.ErrorRates = append(s.ErrorRates, result.ErrorRate)
	s.applyTransition()
}

// Submit validates the result's required fields and delegates to
// Update. It returns the difficulty level in effect after the
// transition, or *InvalidResultError for a malformed result.
func (s *State) Submit(result challenge.Result) (challenge.Level, error) {
	if result.Challenge.Kind == "" {
		return s.Level, &InvalidResultError{Field: "challenge", Reason: "missing"}
	}
	if result.SolvingTime < 0 {
		return s.Level, &InvalidResultError{Field: "solving_time", Reason: "must be >= 0"}
	}
	if result.ErrorRate < 0 || result.ErrorRate > 1 {
		return s.Level, &InvalidResultError{Field: "error_rate", Reason: "must be in [0,1]"}
	}
	s.Update(result)
	return s.Level, nil
}

// applyTransition mutates Level from the latest (solving time, error
// rate) pair. History before the latest entry is retained but never
// aggregated. Evaluated in priority order:
//
//  1. fast and accurate: advance one level (Expert is a ceiling);
//  2. slow or sloppy: hard reset to Beginner, discarding the
//     time/error tracking history;
//  3. otherwise: no change.
func (s *State) applyTransition() {
	last := len(s.SolvingTimes) - 1
	if last < 0 {
		return
	}
	solvingTime := s.SolvingTimes[last]
	errorRate := s.ErrorRates[last]

	switch {
	case solvingTime < AdvanceTimeLimit && errorRate < AdvanceErrorLimit:
		s.Level = s.Level.Next()
	case solvingTime > ResetTimeLimit || errorRate > ResetErrorLimit:
		s.Level = challenge.Beginner
		s.SolvingTimes = nil
		s.ErrorRates = nil
	}
}
