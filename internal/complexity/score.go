// Package complexity scores how mentally demanding a base conversion
// is, on a bounded [0, MaxScore] scale.
package complexity

import "math"

// MaxScore is the ceiling applied to every computed score.
const MaxScore = 10.0

// Score estimates the cognitive complexity of converting value between
// sourceBase and targetBase. Complexity grows with the distance between
// the bases (more mental re-basing) and with the value's magnitude
// (more digits), normalized by the information density of the larger
// base. Equal bases score 0 regardless of value, and value 0 scores 0
// regardless of bases; both are accepted properties of the heuristic.
func Score(sourceBase, targetBase int, value float64) float64 {
	if value == 0 {
		return 0
	}

	baseDistance := math.Abs(float64(sourceBase - targetBase))
	magnitude := math.Abs(value)
	larger := math.Max(float64(sourceBase), float64(targetBase))

	score := baseDistance * (1 + math.Log(magnitude+1)) / math.Log(larger)
	return math.Min(score, MaxScore)
}
