// Package baseconv converts textual numeric values between positional
// bases 2 through 36, pivoting through a base-10 float64 intermediate.
//
// The engine is deliberately fixed-precision: very large magnitudes and
// repeating fractions lose precision rather than promoting to arbitrary
// precision, and fractional output is truncated after ten digits.
package baseconv

import (
	"math"
	"strings"
)

const (
	// MinBase and MaxBase bound the supported radix range.
	MinBase = 2
	MaxBase = 36

	// FractionDigits caps the number of rendered fractional digits.
	// Repeating fractions are truncated, never rounded.
	FractionDigits = 10
)

// Conversion holds the outcome of a single base conversion.
type Conversion struct {
	// Representation is the value rendered in the target base,
	// uppercase digits, '.' as the fractional separator.
	Representation string

	// Decimal is the base-10 intermediate the conversion pivoted on.
	Decimal float64

	SourceBase int
	TargetBase int
}

// Convert parses value as a number in sourceBase and renders it in
// targetBase. It returns *InvalidBaseError when either base is outside
// [MinBase, MaxBase] and *DigitOutOfRangeError when value contains a
// character that is not a digit of sourceBase.
func Convert(value string, sourceBase, targetBase int) (*Conversion, error) {
	if err := validateBases(sourceBase, targetBase); err != nil {
		return nil, err
	}

	dec, err := toDecimal(value, sourceBase)
	if err != nil {
		return nil, err
	}

	return &Conversion{
		Representation: fromDecimal(dec, targetBase),
		Decimal:        dec,
		SourceBase:     sourceBase,
		TargetBase:     targetBase,
	}, nil
}

// validateBases checks both bases against the supported range.
func validateBases(sourceBase, targetBase int) error {
	if sourceBase < MinBase || sourceBase > MaxBase ||
		targetBase < MinBase || targetBase > MaxBase {
		return &InvalidBaseError{SourceBase: sourceBase, TargetBase: targetBase}
	}
	return nil
}

// toDecimal parses value in sourceBase into a float64. The value may
// carry one optional '.' separating the integer and fractional parts.
func toDecimal(value string, sourceBase int) (float64, error) {
	intPart, fracPart, _ := strings.Cut(value, ".")

	var dec float64
	for _, r := range intPart {
		d := digitValue(r)
		if d < 0 || d >= sourceBase {
			return 0, &DigitOutOfRangeError{Digit: r, Base: sourceBase}
		}
		dec = dec*float64(sourceBase) + float64(d)
	}

	weight := 1.0
	for _, r := range fracPart {
		d := digitValue(r)
		if d < 0 || d >= sourceBase {
			return 0, &DigitOutOfRangeError{Digit: r, Base: sourceBase}
		}
		weight /= float64(sourceBase)
		dec += float64(d) * weight
	}

	return dec, nil
}

// fromDecimal renders a non-negative decimal value in targetBase.
func fromDecimal(value float64, targetBase int) string {
	intPart := int64(math.Trunc(value))
	frac := value - math.Trunc(value)

	// Integer digits, least significant first.
	var intDigits []byte
	for intPart > 0 {
		intDigits = append(intDigits, Alphabet[intPart%int64(targetBase)])
		intPart /= int64(targetBase)
	}
	if len(intDigits) == 0 {
		intDigits = []byte{'0'}
	}
	for i, j := 0, len(intDigits)-1; i < j; i, j = i+1, j-1 {
		intDigits[i], intDigits[j] = intDigits[j], intDigits[i]
	}

	var fracDigits []byte
	for frac > 0 && len(fracDigits) < FractionDigits {
		frac *= float64(targetBase)
		d := int(frac)
		fracDigits = append(fracDigits, Alphabet[d])
		frac -= float64(d)
	}

	if len(fracDigits) == 0 {
		return string(intDigits)
	}
	return string(intDigits) + "." + string(fracDigits)
}
