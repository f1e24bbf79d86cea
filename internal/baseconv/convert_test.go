package baseconv

import (
	"errors"
	"strconv"
	"testing"
)

func TestConvert_KnownScenarios(t *testing.T) {
	tests := []struct {
		value      string
		sourceBase int
		targetBase int
		want       string
	}{
		{"255", 10, 16, "FF"},
		{"FF", 16, 2, "11111111"},
		{"10.5", 10, 2, "1010.1"},
		{"ff", 16, 10, "255"},    // lowercase input accepted
		{"1010", 2, 10, "10"},
		{"Z", 36, 10, "35"},
		{"100", 8, 10, "64"},
		{"0.5", 10, 2, "0.1"},
		{"7", 10, 7, "10"},
	}

	for _, tt := range tests {
		conv, err := Convert(tt.value, tt.sourceBase, tt.targetBase)
		if err != nil {
			t.Errorf("Convert(%q, %d, %d): unexpected error %v", tt.value, tt.sourceBase, tt.targetBase, err)
			continue
		}
		if conv.Representation != tt.want {
			t.Errorf("Convert(%q, %d, %d) = %q, want %q", tt.value, tt.sourceBase, tt.targetBase, conv.Representation, tt.want)
		}
	}
}

func TestConvert_ZeroIsZeroInEveryBase(t *testing.T) {
	for b1 := MinBase; b1 <= MaxBase; b1++ {
		for b2 := MinBase; b2 <= MaxBase; b2++ {
			conv, err := Convert("0", b1, b2)
			if err != nil {
				t.Fatalf("Convert(0, %d, %d): %v", b1, b2, err)
			}
			if conv.Representation != "0" {
				t.Fatalf("Convert(0, %d, %d) = %q, want 0", b1, b2, conv.Representation)
			}
		}
	}
}

func TestConvert_IntegerRoundTrip(t *testing.T) {
	values := []int{1, 2, 7, 10, 36, 100, 255, 1000, 4095, 123456, 999999}

	for b := MinBase; b <= MaxBase; b++ {
		for _, v := range values {
			forward, err := Convert(strconv.Itoa(v), 10, b)
			if err != nil {
				t.Fatalf("Convert(%d, 10, %d): %v", v, b, err)
			}
			back, err := Convert(forward.Representation, b, 10)
			if err != nil {
				t.Fatalf("Convert(%q, %d, 10): %v", forward.Representation, b, err)
			}
			if back.Representation != strconv.Itoa(v) {
				t.Fatalf("round trip %d via base %d = %q", v, b, back.Representation)
			}
		}
	}
}

func TestConvert_DecimalIntermediate(t *testing.T) {
	conv, err := Convert("FF", 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	if conv.Decimal != 255 {
		t.Errorf("Decimal = %v, want 255", conv.Decimal)
	}

	conv, err = Convert("10.5", 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	if conv.Decimal != 10.5 {
		t.Errorf("Decimal = %v, want 10.5", conv.Decimal)
	}
}

func TestConvert_FractionTruncatesAtTenDigits(t *testing.T) {
	// 0.1 in base 3 is one third: a repeating fraction in base 10.
	conv, err := Convert("0.1", 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := "0.3333333333"
	if conv.Representation != want {
		t.Errorf("Convert(0.1, 3, 10) = %q, want %q", conv.Representation, want)
	}
}

func TestConvert_InvalidBases(t *testing.T) {
	tests := []struct {
		sourceBase int
		targetBase int
	}{
		{1, 10},
		{10, 1},
		{0, 0},
		{37, 10},
		{10, 37},
		{-2, 16},
	}

	for _, tt := range tests {
		_, err := Convert("10", tt.sourceBase, tt.targetBase)
		var baseErr *InvalidBaseError
		if !errors.As(err, &baseErr) {
			t.Errorf("Convert(10, %d, %d): error = %v, want *InvalidBaseError", tt.sourceBase, tt.targetBase, err)
			continue
		}
		if baseErr.SourceBase != tt.sourceBase || baseErr.TargetBase != tt.targetBase {
			t.Errorf("error names bases (%d, %d), want (%d, %d)", baseErr.SourceBase, baseErr.TargetBase, tt.sourceBase, tt.targetBase)
		}
	}
}

func TestConvert_DigitOutOfRange(t *testing.T) {
	tests := []struct {
		value      string
		sourceBase int
		wantDigit  rune
	}{
		{"G", 10, 'G'},  // letter in a numeric base
		{"G", 16, 'G'},  // G has value 16, not a base-16 digit
		{"123", 2, '2'}, // decimal digit beyond the base
		{"1.2", 2, '2'}, // fractional digits validated too
		{"1 0", 10, ' '},
	}

	for _, tt := range tests {
		_, err := Convert(tt.value, tt.sourceBase, 10)
		var digitErr *DigitOutOfRangeError
		if !errors.As(err, &digitErr) {
			t.Errorf("Convert(%q, %d, 10): error = %v, want *DigitOutOfRangeError", tt.value, tt.sourceBase, err)
			continue
		}
		if digitErr.Digit != tt.wantDigit {
			t.Errorf("Convert(%q, %d, 10): error digit = %q, want %q", tt.value, tt.sourceBase, digitErr.Digit, tt.wantDigit)
		}
		if digitErr.Base != tt.sourceBase {
			t.Errorf("Convert(%q, %d, 10): error base = %d, want %d", tt.value, tt.sourceBase, digitErr.Base, tt.sourceBase)
		}
	}
}

func TestConvert_GValidInBaseSeventeen(t *testing.T) {
	conv, err := Convert("G", 17, 10)
	if err != nil {
		t.Fatalf("Convert(G, 17, 10): %v", err)
	}
	if conv.Representation != "16" {
		t.Errorf("Convert(G, 17, 10) = %q, want 16", conv.Representation)
	}
}
