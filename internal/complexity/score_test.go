package complexity

import (
	"math"
	"testing"
)

func TestScore_WithinBounds(t *testing.T) {
	values := []float64{0, 0.5, 1, 10, 255, 1000, 1e6, -42}

	for s := 2; s <= 36; s++ {
		for tb := 2; tb <= 36; tb++ {
			for _, v := range values {
				score := Score(s, tb, v)
				if score < 0 || score > MaxScore {
					t.Fatalf("Score(%d, %d, %v) = %v, outside [0, %v]", s, tb, v, score, MaxScore)
				}
			}
		}
	}
}

func TestScore_ZeroValue(t *testing.T) {
	if got := Score(2, 36, 0); got != 0 {
		t.Errorf("Score(2, 36, 0) = %v, want 0", got)
	}
	if got := Score(16, 2, 0); got != 0 {
		t.Errorf("Score(16, 2, 0) = %v, want 0", got)
	}
}

func TestScore_SameBase(t *testing.T) {
	if got := Score(16, 16, 255); got != 0 {
		t.Errorf("Score(16, 16, 255) = %v, want 0", got)
	}
}

func TestScore_KnownValue(t *testing.T) {
	// Base distance 2, magnitude 1.
	want := 2 * (1 + math.Log(2)) / math.Log(4)
	got := Score(2, 4, 1)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Score(2, 4, 1) = %v, want %v", got, want)
	}
}

func TestScore_ClampsLargeSpreads(t *testing.T) {
	if got := Score(2, 36, 1e6); got != MaxScore {
		t.Errorf("Score(2, 36, 1e6) = %v, want %v", got, MaxScore)
	}
}

func TestScore_NegativeValueUsesMagnitude(t *testing.T) {
	pos := Score(2, 16, 42)
	neg := Score(2, 16, -42)
	if pos != neg {
		t.Errorf("Score(2, 16, -42) = %v, want %v", neg, pos)
	}
}
