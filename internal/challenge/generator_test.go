package challenge

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/Surfer12/microarch-lab-conversions/internal/baseconv"
)

func TestGenerate_BaseConversionWithinLevelParams(t *testing.T) {
	gen := New(rand.New(rand.NewSource(1)))
	params := DefaultParams()

	for _, level := range Levels() {
		p := params[level]
		for i := 0; i < 200; i++ {
			ch, err := gen.Generate(KindBaseConversion, level)
			if err != nil {
				t.Fatalf("Generate(%v): %v", level, err)
			}
			if ch.SourceBase < p.MinBase || ch.SourceBase > p.MaxBase {
				t.Fatalf("%v: source base %d outside [%d, %d]", level, ch.SourceBase, p.MinBase, p.MaxBase)
			}
			if ch.TargetBase < p.MinBase || ch.TargetBase > p.MaxBase {
				t.Fatalf("%v: target base %d outside [%d, %d]", level, ch.TargetBase, p.MinBase, p.MaxBase)
			}
			if ch.Level != level {
				t.Fatalf("challenge level = %v, want %v", ch.Level, level)
			}
			if ch.Complexity < 0 || ch.Complexity > 10 {
				t.Fatalf("complexity %v outside [0, 10]", ch.Complexity)
			}
		}
	}
}

func TestGenerate_ValueParsesUnderSourceBase(t *testing.T) {
	gen := New(rand.New(rand.NewSource(7)))

	for _, level := range Levels() {
		for i := 0; i < 200; i++ {
			ch, err := gen.Generate(KindBaseConversion, level)
			if err != nil {
				t.Fatalf("Generate(%v): %v", level, err)
			}
			conv, err := baseconv.Convert(ch.Value, ch.SourceBase, 10)
			if err != nil {
				t.Fatalf("value %q not parseable in base %d: %v", ch.Value, ch.SourceBase, err)
			}
			p := DefaultParams()[level]
			if conv.Decimal < 0 || conv.Decimal >= float64(p.MaxValue)+1 {
				t.Fatalf("%v: decimal value %v outside [0, %d]", level, conv.Decimal, p.MaxValue+1)
			}
		}
	}
}

func TestGenerate_LowerLevelsStayIntegral(t *testing.T) {
	gen := New(rand.New(rand.NewSource(3)))

	for _, level := range []Level{Beginner, Intermediate} {
		for i := 0; i < 200; i++ {
			ch, err := gen.Generate(KindBaseConversion, level)
			if err != nil {
				t.Fatalf("Generate(%v): %v", level, err)
			}
			if strings.ContainsRune(ch.Value, '.') {
				t.Fatalf("%v produced fractional value %q", level, ch.Value)
			}
		}
	}
}

func TestGenerate_DeterministicWithFixedSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		chA, err := a.Generate(KindBaseConversion, Expert)
		if err != nil {
			t.Fatal(err)
		}
		chB, err := b.Generate(KindBaseConversion, Expert)
		if err != nil {
			t.Fatal(err)
		}
		if *chA != *chB {
			t.Fatalf("seeded generators diverged: %+v vs %+v", chA, chB)
		}
	}
}

func TestGenerate_UnsupportedKinds(t *testing.T) {
	gen := New(rand.New(rand.NewSource(1)))

	kinds := []Kind{KindComplexityEstimate, KindMetaLearning, KindSkillAssessment, Kind("bogus")}
	for _, kind := range kinds {
		_, err := gen.Generate(kind, Beginner)
		var kindErr *UnsupportedKindError
		if !errors.As(err, &kindErr) {
			t.Errorf("Generate(%q): error = %v, want *UnsupportedKindError", kind, err)
			continue
		}
		if kindErr.Kind != kind {
			t.Errorf("error kind = %q, want %q", kindErr.Kind, kind)
		}
	}
}

func TestGenerate_UnknownLevelFails(t *testing.T) {
	gen := New(rand.New(rand.NewSource(1)))
	if _, err := gen.Generate(KindBaseConversion, Level(99)); err == nil {
		t.Error("Generate with unknown level succeeded, want error")
	}
}
