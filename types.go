// Package massfmt formats mass quantities into locale-appropriate strings.
//
// It selects a display unit (gram/kilogram for metric locales, ounce/pound
// otherwise) for a raw kilogram magnitude, converts the value into that
// unit, and renders it with locale-correct digits plus symbol or
// singular/plural unit text. Example outputs: "2.205 lb", "1,200 g",
// "1 kilogram".
package massfmt

import (
	"fmt"

	"github.com/rshade/massfmt/internal/unitconv"
)

// Unit identifies a supported mass unit.
type Unit int

const (
	// Gram is the metric gram.
	Gram Unit = iota

	// Kilogram is the metric kilogram.
	Kilogram

	// Ounce is the avoirdupois ounce.
	Ounce

	// Pound is the avoirdupois pound.
	Pound

	// Stone is the imperial stone. Never chosen automatically, but fully
	// formattable on request.
	Stone
)

// Symbol returns the unit's display symbol, e.g. "kg".
func (u Unit) Symbol() string {
	switch u {
	case Gram:
		return "g"
	case Kilogram:
		return "kg"
	case Ounce:
		return "oz"
	case Pound:
		return "lb"
	case Stone:
		return "st"
	default:
		return ""
	}
}

// Singular returns the unit's full singular word, e.g. "kilogram".
func (u Unit) Singular() string {
	switch u {
	case Gram:
		return "gram"
	case Kilogram:
		return "kilogram"
	case Ounce:
		return "ounce"
	case Pound:
		return "pound"
	case Stone:
		return "stone"
	default:
		return ""
	}
}

// Plural returns the unit's full plural word, always Singular + "s".
func (u Unit) Plural() string {
	return u.Singular() + "s"
}

// String returns a human-readable representation of the Unit.
func (u Unit) String() string {
	if s := u.Singular(); s != "" {
		return s
	}
	return fmt.Sprintf("Unit(%d)", u)
}

// conversionUnit maps the unit into the conversion utility's identifier
// space. The mapping is total: every Unit variant resolves to exactly one
// unitconv.Unit, and tests pin each entry.
func (u Unit) conversionUnit() unitconv.Unit {
	switch u {
	case Gram:
		return unitconv.Gram
	case Kilogram:
		return unitconv.Kilogram
	case Ounce:
		return unitconv.Ounce
	case Pound:
		return unitconv.Pound
	case Stone:
		return unitconv.Stone
	default:
		return ""
	}
}

// UnitStyle controls how the unit portion of a formatted mass is rendered.
type UnitStyle int

const (
	// StyleShort renders the symbol with no separator, e.g. "2.64lb".
	StyleShort UnitStyle = iota

	// StyleMedium renders the symbol after a space, e.g. "2.64 lb".
	StyleMedium

	// StyleLong renders the full word, singular only for a value of
	// exactly 1, e.g. "1 pound" / "2.64 pounds".
	StyleLong
)

// String returns a human-readable representation of the UnitStyle.
func (s UnitStyle) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleMedium:
		return "medium"
	case StyleLong:
		return "long"
	default:
		return fmt.Sprintf("UnitStyle(%d)", s)
	}
}
