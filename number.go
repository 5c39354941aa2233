package massfmt

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultMaxFractionDigits caps decimal output so converted magnitudes
// read naturally ("2.205 lb" rather than full float precision).
const defaultMaxFractionDigits = 3

// NumberRenderer produces a locale-formatted digit string for a float
// value. It is the swappable numeric engine behind MassFormatter: the
// renderer owns the locale, and Locale reports its identifier in POSIX
// form ("en_US") for metric classification.
type NumberRenderer interface {
	Render(v float64) (string, error)
	Locale() string
}

// DecimalRenderer is the default NumberRenderer, backed by
// golang.org/x/text message printing in decimal style.
type DecimalRenderer struct {
	tag     language.Tag
	printer *message.Printer

	// MaxFractionDigits caps the rendered fraction digits. Negative
	// values are treated as zero.
	MaxFractionDigits int
}

// NewDecimalRenderer returns a decimal renderer for the given locale tag.
func NewDecimalRenderer(tag language.Tag) *DecimalRenderer {
	return &DecimalRenderer{
		tag:               tag,
		printer:           message.NewPrinter(tag),
		MaxFractionDigits: defaultMaxFractionDigits,
	}
}

// Render formats v with the renderer's locale conventions, including
// grouping separators. Returns ErrUnrenderable if the renderer was not
// constructed with NewDecimalRenderer or produced no output.
func (r *DecimalRenderer) Render(v float64) (string, error) {
	if r == nil || r.printer == nil {
		return "", ErrUnrenderable
	}

	digits := r.MaxFractionDigits
	if digits < 0 {
		digits = 0
	}

	s := r.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(digits)))
	if s == "" {
		return "", ErrUnrenderable
	}
	return s, nil
}

// Locale returns the renderer's locale identifier in POSIX form,
// e.g. "en_US" for language.AmericanEnglish.
func (r *DecimalRenderer) Locale() string {
	return strings.ReplaceAll(r.tag.String(), "-", "_")
}
