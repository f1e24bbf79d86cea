package learning

import (
	"errors"
	"testing"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

func resultWith(solvingTime, errorRate float64) challenge.Result {
	return challenge.Result{
		Challenge: challenge.Challenge{
			Kind:       challenge.KindBaseConversion,
			SourceBase: 10,
			TargetBase: 2,
			Value:      "10",
			Level:      challenge.Beginner,
		},
		UserAnswer:  "1010",
		Correct:     errorRate == 0,
		SolvingTime: solvingTime,
		ErrorRate:   errorRate,
	}
}

func TestState_AdvanceOnFastAccurateResult(t *testing.T) {
	s := NewState()

	level, err := s.Submit(resultWith(20, 0.05))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if level != challenge.Intermediate {
		t.Errorf("level = %v, want %v", level, challenge.Intermediate)
	}
	if len(s.Completed) != 1 {
		t.Errorf("Completed length = %d, want 1", len(s.Completed))
	}
}

func TestState_AdvanceThenHardReset(t *testing.T) {
	s := NewState()

	if _, err := s.Submit(resultWith(20, 0.05)); err != nil {
		t.Fatal(err)
	}
	if s.Level != challenge.Intermediate {
		t.Fatalf("level after advance = %v, want %v", s.Level, challenge.Intermediate)
	}

	level, err := s.Submit(resultWith(130, 0.35))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if level != challenge.Beginner {
		t.Errorf("level after reset = %v, want %v", level, challenge.Beginner)
	}
	if len(s.SolvingTimes) != 0 || len(s.ErrorRates) != 0 {
		t.Errorf("tracking slices not cleared: times=%d rates=%d", len(s.SolvingTimes), len(s.ErrorRates))
	}
	// The result history survives the reset.
	if len(s.Completed) != 2 {
		t.Errorf("Completed length = %d, want 2", len(s.Completed))
	}
}

func TestState_MiddleBandHoldsLevel(t *testing.T) {
	s := NewStateAt(challenge.Advanced)

	// Too slow to advance, not bad enough to reset.
	level, err := s.Submit(resultWith(60, 0.2))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if level != challenge.Advanced {
		t.Errorf("level = %v, want %v", level, challenge.Advanced)
	}
}

func TestState_BoundaryValuesHoldLevel(t *testing.T) {
	// Thresholds are strict comparisons: hitting a limit exactly
	// triggers neither advancement nor reset.
	tests := []struct {
		solvingTime float64
		errorRate   float64
	}{
		{30, 0.05},  // at the advance time limit
		{20, 0.1},   // at the advance error limit
		{120, 0.2},  // at the reset time limit
		{60, 0.3},   // at the reset error limit
	}

	for _, tt := range tests {
		s := NewStateAt(challenge.Intermediate)
		level, err := s.Submit(resultWith(tt.solvingTime, tt.errorRate))
		if err != nil {
			t.Fatalf("Submit(%v, %v): %v", tt.solvingTime, tt.errorRate, err)
		}
		if level != challenge.Intermediate {
			t.Errorf("Submit(%v, %v): level = %v, want %v", tt.solvingTime, tt.errorRate, level, challenge.Intermediate)
		}
	}
}

func TestState_ExpertIsCeiling(t *testing.T) {
	s := NewStateAt(challenge.Expert)

	level, err := s.Submit(resultWith(10, 0))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if level != challenge.Expert {
		t.Errorf("level = %v, want %v", level, challenge.Expert)
	}
}

func TestState_AdvancesWholeLadder(t *testing.T) {
	s := NewState()
	want := []challenge.Level{
		challenge.Intermediate,
		challenge.Advanced,
		challenge.Expert,
		challenge.Expert,
	}

	for i, w := range want {
		level, err := s.Submit(resultWith(10, 0))
		if err != nil {
			t.Fatalf("Submit #%d: %v", i+1, err)
		}
		if level != w {
			t.Fatalf("after submit #%d: level = %v, want %v", i+1, level, w)
		}
	}
}

func TestState_OnlyLatestResultDrivesTransition(t *testing.T) {
	s := NewStateAt(challenge.Advanced)

	// A string of poor (but non-reset) results followed by one fast
	// accurate one still advances; earlier history is never averaged.
	for i := 0; i < 5; i++ {
		if _, err := s.Submit(resultWith(90, 0.25)); err != nil {
			t.Fatal(err)
		}
	}
	level, err := s.Submit(resultWith(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if level != challenge.Expert {
		t.Errorf("level = %v, want %v", level, challenge.Expert)
	}
}

func TestState_SubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		result    challenge.Result
		wantField string
	}{
		{"missing challenge", challenge.Result{SolvingTime: 10}, "challenge"},
		{"negative solving time", resultWith(-1, 0), "solving_time"},
		{"error rate below range", resultWith(10, -0.1), "error_rate"},
		{"error rate above range", resultWith(10, 1.5), "error_rate"},
	}

	for _, tt := range tests {
		s := NewStateAt(challenge.Advanced)
		level, err := s.Submit(tt.result)
		var invalid *InvalidResultError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: error = %v, want *InvalidResultError", tt.name, err)
			continue
		}
		if invalid.Field != tt.wantField {
			t.Errorf("%s: error field = %q, want %q", tt.name, invalid.Field, tt.wantField)
		}
		if level != challenge.Advanced {
			t.Errorf("%s: level changed to %v on invalid submit", tt.name, level)
		}
		if len(s.Completed) != 0 {
			t.Errorf("%s: invalid result was recorded", tt.name)
		}
	}
}
