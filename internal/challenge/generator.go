package challenge

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/Surfer12/microarch-lab-conversions/internal/baseconv"
	"github.com/Surfer12/microarch-lab-conversions/internal/complexity"
)

// Generator produces randomized exercises. It is a pure function of
// its parameter table and random source; it keeps no history and has
// no persisted side effects.
type Generator struct {
	params map[Level]LevelParams
	rng    *rand.Rand
}

// New creates a Generator with the default parameter table. A nil rng
// gets a time-seeded source; tests inject a fixed seed.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		params: DefaultParams(),
		rng:    rng,
	}
}

// Generate produces a challenge of the given kind at the given level.
func (g *Generator) Generate(kind Kind, level Level) (*Challenge, error) {
	switch kind {
	case KindBaseConversion:
		return g.baseConversion(level)
	case KindComplexityEstimate, KindMetaLearning, KindSkillAssessment:
		return nil, &UnsupportedKindError{Kind: kind}
	default:
		return nil, &UnsupportedKindError{Kind: kind}
	}
}

func (g *Generator) baseConversion(level Level) (*Challenge, error) {
	p, ok := g.params[level]
	if !ok {
		return nil, fmt.Errorf("no generation parameters for level %s", level)
	}

	// Source and target are drawn independently and may coincide;
	// complexity then scores 0, which is intentional.
	source := g.drawBase(p)
	target := g.drawBase(p)

	decimal := float64(g.rng.Intn(p.MaxValue + 1))
	if p.FractionalChance > 0 && g.rng.Float64() < p.FractionalChance {
		decimal += math.Round(g.rng.Float64()*1000) / 1000
	}

	// Render the drawn value in the source base so the exercise shows
	// a numeral the converter can parse back under that base.
	conv, err := baseconv.Convert(formatDecimal(decimal), 10, source)
	if err != nil {
		return nil, fmt.Errorf("render challenge value: %w", err)
	}

	return &Challenge{
		Kind:       KindBaseConversion,
		SourceBase: source,
		TargetBase: target,
		Value:      conv.Representation,
		Level:      level,
		Complexity: complexity.Score(source, target, conv.Decimal),
	}, nil
}

func (g *Generator) drawBase(p LevelParams) int {
	return p.MinBase + g.rng.Intn(p.MaxBase-p.MinBase+1)
}

// formatDecimal renders a base-10 value with the minimal digits that
// round-trip through float64.
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
