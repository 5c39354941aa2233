// Package unitconv performs linear conversion between mass units.
//
// Kilograms are the pivot: a value is taken to kilograms with the source
// unit's factor and then out with the target's. All factors are fixed
// constants; there is no locale or configuration involvement at this layer.
package unitconv

import "math"

// Unit identifies a mass unit in the converter's own identifier space.
type Unit string

const (
	// Gram is one thousandth of a kilogram.
	Gram Unit = "g"

	// Kilogram is the pivot unit.
	Kilogram Unit = "kg"

	// Ounce is the avoirdupois ounce.
	Ounce Unit = "oz"

	// Pound is the avoirdupois pound (exactly 16 ounces).
	Pound Unit = "lb"

	// Stone is the imperial stone (exactly 14 pounds).
	Stone Unit = "st"
)

// Kilograms per one unit. Ounce and pound use the exact international
// avoirdupois definitions, so lb/oz and st/lb ratios come out whole.
const (
	gramKg     = 0.001
	kilogramKg = 1.0
	ounceKg    = 0.028349523125
	poundKg    = 0.45359237
	stoneKg    = 6.35029318
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrInvalidUnit indicates an unrecognized unit identifier.
	ErrInvalidUnit = constError("invalid mass unit")

	// ErrOverflow indicates a non-finite input or a conversion whose
	// result overflowed the float64 range.
	ErrOverflow = constError("mass conversion overflow")
)

// Factor returns the kilograms in one u and whether u is recognized.
func Factor(u Unit) (float64, bool) {
	switch u {
	case Gram:
		return gramKg, true
	case Kilogram:
		return kilogramKg, true
	case Ounce:
		return ounceKg, true
	case Pound:
		return poundKg, true
	case Stone:
		return stoneKg, true
	default:
		return 0, false
	}
}

// Valid reports whether u is a recognized mass unit.
func (u Unit) Valid() bool {
	_, ok := Factor(u)
	return ok
}

// Convert converts v from one unit to another.
//
// Returns ErrInvalidUnit if either unit is unrecognized, and ErrOverflow
// if v is NaN or infinite or the converted value overflows.
func Convert(v float64, from, to Unit) (float64, error) {
	fromKg, ok := Factor(from)
	if !ok {
		return 0, ErrInvalidUnit
	}
	toKg, ok := Factor(to)
	if !ok {
		return 0, ErrInvalidUnit
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrOverflow
	}

	result := v * (fromKg / toKg)

	// Check for overflow after multiplication
	if math.IsInf(result, 0) {
		return 0, ErrOverflow
	}

	return result, nil
}

// ToKilograms converts v in unit from into kilograms.
func ToKilograms(v float64, from Unit) (float64, error) {
	return Convert(v, from, Kilogram)
}

// FromKilograms converts a kilogram value into unit to.
func FromKilograms(kg float64, to Unit) (float64, error) {
	return Convert(kg, Kilogram, to)
}
