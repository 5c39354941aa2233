package massfmt

import "strings"

// nonMetricLocales lists the locale identifiers whose conventional mass
// units are imperial. This is a deliberate static table, kept for behavior
// compatibility with existing output: do not derive it from general locale
// measurement metadata.
//
//nolint:gochecknoglobals // Immutable lookup table.
var nonMetricLocales = map[string]struct{}{
	"en_US":       {},
	"en_US_POSIX": {},
	"haw_US":      {},
	"es_US":       {},
	"chr_US":      {},
	"my_MM":       {},
	"en_LR":       {},
	"vai_LR":      {},
}

// IsMetricLocale reports whether the locale identifier names a locale that
// uses metric mass units. BCP 47 hyphens are accepted, so "en-US" and
// "en_US" classify identically. Any identifier outside the static
// non-metric table is metric.
func IsMetricLocale(identifier string) bool {
	id := strings.ReplaceAll(identifier, "-", "_")
	_, imperial := nonMetricLocales[id]
	return !imperial
}
