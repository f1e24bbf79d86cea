package learning

import (
	"errors"
	"testing"

	"github.com/Surfer12/microarch-lab-conversions/internal/baseconv"
	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
)

func conversionChallenge(value string, sourceBase, targetBase int) challenge.Challenge {
	return challenge.Challenge{
		Kind:       challenge.KindBaseConversion,
		SourceBase: sourceBase,
		TargetBase: targetBase,
		Value:      value,
		Level:      challenge.Beginner,
	}
}

func TestEvaluateAnswer(t *testing.T) {
	tests := []struct {
		name        string
		challenge   challenge.Challenge
		answer      string
		wantCorrect bool
		wantAnswer  string
	}{
		{"exact match", conversionChallenge("255", 10, 16), "FF", true, "FF"},
		{"wrong digits", conversionChallenge("255", 10, 16), "FE", false, "FF"},
		{"lowercase not accepted", conversionChallenge("255", 10, 16), "ff", false, "FF"},
		{"leading zero not accepted", conversionChallenge("255", 10, 16), "0FF", false, "FF"},
		{"surrounding space not accepted", conversionChallenge("255", 10, 16), " FF", false, "FF"},
		{"fractional match", conversionChallenge("10.5", 10, 2), "1010.1", true, "1010.1"},
		{"empty answer", conversionChallenge("255", 10, 16), "", false, "FF"},
	}

	for _, tt := range tests {
		ev, err := EvaluateAnswer(tt.challenge, tt.answer)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if ev.Correct != tt.wantCorrect {
			t.Errorf("%s: Correct = %v, want %v", tt.name, ev.Correct, tt.wantCorrect)
		}
		if ev.CorrectAnswer != tt.wantAnswer {
			t.Errorf("%s: CorrectAnswer = %q, want %q", tt.name, ev.CorrectAnswer, tt.wantAnswer)
		}
		wantRate := 0.0
		if !tt.wantCorrect {
			wantRate = 1.0
		}
		if ev.ErrorRate != wantRate {
			t.Errorf("%s: ErrorRate = %v, want %v", tt.name, ev.ErrorRate, wantRate)
		}
	}
}

func TestEvaluateAnswer_ConversionFailureSurfaces(t *testing.T) {
	_, err := EvaluateAnswer(conversionChallenge("G", 16, 10), "16")
	var digitErr *baseconv.DigitOutOfRangeError
	if !errors.As(err, &digitErr) {
		t.Errorf("error = %v, want *baseconv.DigitOutOfRangeError", err)
	}

	_, err = EvaluateAnswer(conversionChallenge("10", 1, 10), "10")
	var baseErr *baseconv.InvalidBaseError
	if !errors.As(err, &baseErr) {
		t.Errorf("error = %v, want *baseconv.InvalidBaseError", err)
	}
}
