package massfmt

import "github.com/rshade/massfmt/internal/unitconv"

// ouncesPerPound is the display cutover between ounce and pound.
const ouncesPerPound = 16.0

// selectUnit picks the display unit for a raw kilogram magnitude.
//
// The metric gram/kilogram condition is preserved exactly from the
// long-standing behavior: gram whenever kg > 0 or kg < 1. Every float64
// satisfies one of the two clauses except NaN, which falls through to
// kilogram.
func selectUnit(kilograms float64, metric bool) Unit {
	if metric {
		if kilograms > 0.0 || kilograms < 1.0 {
			return Gram
		}
		return Kilogram
	}

	ounces, err := unitconv.FromKilograms(kilograms, unitconv.Ounce)
	if err != nil {
		// Non-finite or overflowing magnitudes are pound-scale.
		return Pound
	}
	if ounces < 0.0 || ounces > ouncesPerPound {
		return Pound
	}
	return Ounce
}
