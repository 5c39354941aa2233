package massfmt

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/rshade/massfmt/internal/unitconv"
)

// MassFormatter renders mass values as human-readable, locale-appropriate
// strings.
//
// The zero value has no renderer and every Format call fails; construct
// with New or NewWithRenderer. A MassFormatter is not internally
// synchronized: concurrent readers are fine, but mutating Renderer, Style,
// or ForPersonMass requires a single writer or an external lock.
type MassFormatter struct {
	// Renderer is the number-rendering engine, swappable by the owner.
	// Its locale drives metric/imperial unit selection.
	Renderer NumberRenderer

	// Style controls unit text rendering.
	Style UnitStyle

	// ForPersonMass marks the formatter as describing body mass.
	// Advisory: reserved for locale-specific person-mass preferences.
	ForPersonMass bool
}

// New returns a formatter with decimal rendering for language.English,
// StyleMedium, and ForPersonMass false.
func New() *MassFormatter {
	return NewWithRenderer(NewDecimalRenderer(language.English))
}

// NewWithRenderer returns a StyleMedium formatter backed by r.
func NewWithRenderer(r NumberRenderer) *MassFormatter {
	return &MassFormatter{
		Renderer: r,
		Style:    StyleMedium,
	}
}

// Format renders value in the given unit, e.g. "2.64 lb".
//
// The separator between digits and unit text is empty for StyleShort and a
// single space otherwise. If the number renderer cannot produce a string
// for value, Format returns an error satisfying errors.Is(err,
// ErrUnrenderable) and an empty string, never a partial result.
func (f *MassFormatter) Format(value float64, unit Unit) (string, error) {
	digits, err := f.render(value)
	if err != nil {
		return "", err
	}

	sep := " "
	if f.Style == StyleShort {
		sep = ""
	}
	return digits + sep + f.UnitString(value, unit), nil
}

// UnitString returns only the unit text for value: the symbol for
// StyleShort and StyleMedium, and for StyleLong the singular word when
// value is exactly 1 and the plural word otherwise.
func (f *MassFormatter) UnitString(value float64, unit Unit) string {
	if f.Style != StyleLong {
		return unit.Symbol()
	}
	if value == 1.0 {
		return unit.Singular()
	}
	return unit.Plural()
}

// FormatKilograms renders a raw kilogram magnitude in the display unit
// appropriate for the renderer's locale: gram/kilogram in metric locales,
// ounce/pound otherwise. The magnitude is converted into the selected
// unit before rendering, so FormatKilograms(1) in an en_US formatter
// yields "2.205 lb".
func (f *MassFormatter) FormatKilograms(kg float64) (string, error) {
	unit := f.selectDisplayUnit(kg)

	converted, err := unitconv.FromKilograms(kg, unit.conversionUnit())
	if err != nil {
		return "", fmt.Errorf("%w: convert %g kg to %s: %v", ErrUnrenderable, kg, unit, err)
	}
	return f.Format(converted, unit)
}

// KilogramsUnitString returns the unit text FormatKilograms would use for
// kg, together with the selected unit so callers can learn which unit the
// locale and magnitude produced.
func (f *MassFormatter) KilogramsUnitString(kg float64) (string, Unit) {
	unit := f.selectDisplayUnit(kg)

	converted, err := unitconv.FromKilograms(kg, unit.conversionUnit())
	if err != nil {
		// Non-finite magnitudes still have a unit; plural reads naturally.
		converted = kg
	}
	return f.UnitString(converted, unit), unit
}

// ParseMass never succeeds: parsing formatted mass strings back into
// values is unsupported. It always returns ErrParseUnsupported with zero
// results, and never panics.
func (f *MassFormatter) ParseMass(_ string) (float64, Unit, error) {
	return 0, Gram, ErrParseUnsupported
}

// render invokes the configured renderer, folding every failure into
// ErrUnrenderable.
func (f *MassFormatter) render(value float64) (string, error) {
	if f.Renderer == nil {
		return "", fmt.Errorf("%w: no number renderer configured", ErrUnrenderable)
	}

	digits, err := f.Renderer.Render(value)
	if err != nil {
		log.Warn().Err(err).Float64("value", value).Msg("number renderer failed")
		if errors.Is(err, ErrUnrenderable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrUnrenderable, err)
	}
	return digits, nil
}

// selectDisplayUnit classifies the renderer's locale and picks the unit
// for a kilogram magnitude. A missing renderer classifies as metric.
func (f *MassFormatter) selectDisplayUnit(kg float64) Unit {
	metric := true
	if f.Renderer != nil {
		metric = IsMetricLocale(f.Renderer.Locale())
	}

	unit := selectUnit(kg, metric)
	log.Debug().
		Float64("kilograms", kg).
		Bool("metric", metric).
		Stringer("unit", unit).
		Msg("selected display unit")
	return unit
}
