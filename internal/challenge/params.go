package challenge

// LevelParams bounds the random challenge parameters for one level.
type LevelParams struct {
	// MinBase and MaxBase bound both the source and target base draws.
	MinBase int
	MaxBase int

	// MaxValue bounds the integer value draw (inclusive, from 0).
	MaxValue int

	// FractionalChance is the probability of attaching a fractional
	// part to the drawn value.
	FractionalChance float64
}

// DefaultParams returns the fixed per-level generation table.
func DefaultParams() map[Level]LevelParams {
	return map[Level]LevelParams{
		Beginner:     {MinBase: 2, MaxBase: 10, MaxValue: 100, FractionalChance: 0},
		Intermediate: {MinBase: 2, MaxBase: 16, MaxValue: 1000, FractionalChance: 0},
		Advanced:     {MinBase: 2, MaxBase: 36, MaxValue: 10000, FractionalChance: 0.3},
		Expert:       {MinBase: 2, MaxBase: 36, MaxValue: 1000000, FractionalChance: 0.3},
	}
}
