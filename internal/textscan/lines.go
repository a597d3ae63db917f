// Package textscan provides the shared line-level scanning primitives used by
// the recipe and workout extraction engines. It is domain-agnostic: section
// vocabularies and fallback heuristics are supplied by the caller, so both
// domains share one section-walk implementation.
//
// Every function in this package is pure and never returns an error. A line
// that cannot be classified is simply a plain line; a section that cannot be
// found is an empty slice.
package textscan

import (
	"regexp"
	"strings"
)

// LineKind classifies the structural shape of a single line.
type LineKind int

const (
	KindPlain LineKind = iota
	KindHeader
	KindBulleted
	KindNumbered
	KindKeyValue
	KindMeasurement
)

var (
	// The marker may also end the line, so a stray "- " strips to empty
	// instead of surviving as content.
	bulletMarkerRe = regexp.MustCompile(`^\s*[-*•](?:\s+|$)`)
	numberMarkerRe = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	markdownHdrRe  = regexp.MustCompile(`^\s*#{1,6}\s+`)

	// Quantity at line start: integer, decimal, or unit fraction ("1/2").
	// The fraction alternative comes first so "1/2" is not consumed as "1".
	quantityRe = regexp.MustCompile(`^(\d+\s*/\s*\d+|\d+(?:\.\d+)?)`)

	// Closed measurement vocabulary, optional plural "s".
	unitRe = regexp.MustCompile(`(?i)^(cups?|tbsps?|tablespoons?|tsps?|teaspoons?|oz|ounces?|lbs?|pounds?|g|grams?|kg|kilograms?|ml|milliliters?|l|liters?|cloves?|pieces?|slices?|pinch(?:es)?|dash(?:es)?)\b`)

	// Key:value metadata line, e.g. "Prep time: 10 minutes".
	keyValueRe = regexp.MustCompile(`^[A-Za-z][A-Za-z /&'-]{0,30}:\s*\S`)

	// Measurement-shaped free line: quantity immediately followed by a unit.
	measurementRe = regexp.MustCompile(`(?i)^\s*(\d+\s*/\s*\d+|\d+(?:\.\d+)?)\s*(cups?|tbsps?|tablespoons?|tsps?|teaspoons?|oz|ounces?|lbs?|pounds?|g|grams?|kg|kilograms?|ml|milliliters?|l|liters?|cloves?|pieces?|slices?|pinch(?:es)?|dash(?:es)?)\b`)
)

// SplitLines splits a document into lines, tolerating both \n and \r\n.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// StripEmphasis removes markdown emphasis characters while preserving case.
func StripEmphasis(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '#', '`', '~':
			return -1
		}
		return r
	}, s)
}

// StripMarker removes a single leading bullet or number marker.
func StripMarker(s string) string {
	if m := bulletMarkerRe.FindString(s); m != "" {
		return s[len(m):]
	}
	if m := numberMarkerRe.FindString(s); m != "" {
		return s[len(m):]
	}
	return s
}

// Normalize strips emphasis and one leading list marker and trims whitespace.
// The result keeps the original case; callers lowercase for comparisons.
func Normalize(s string) string {
	return strings.TrimSpace(StripEmphasis(StripMarker(strings.TrimSpace(s))))
}

// normalizeHeader lowercases a normalized line and drops a trailing colon so
// "## Ingredients:" compares equal to "ingredients".
func normalizeHeader(s string) string {
	return strings.TrimSuffix(strings.ToLower(Normalize(s)), ":")
}

// IsListItem reports whether the line carries a bullet or number marker.
func IsListItem(s string) bool {
	return bulletMarkerRe.MatchString(s) || numberMarkerRe.MatchString(s)
}

// IsMeasurementLine reports whether the line starts with a quantity+unit
// token, optionally behind a list marker.
func IsMeasurementLine(s string) bool {
	return measurementRe.MatchString(StripMarker(strings.TrimSpace(s)))
}

// SplitQuantity splits a leading quantity token off a line, returning the raw
// quantity string and the remainder. Quantities are never parsed to floats so
// fractions like "1/2" round-trip losslessly.
func SplitQuantity(s string) (quantity, rest string) {
	m := quantityRe.FindString(s)
	if m == "" {
		return "", s
	}
	return strings.Join(strings.Fields(m), ""), strings.TrimSpace(s[len(m):])
}

// SplitUnit splits a leading measurement unit off a line, returning the unit
// and the remainder. The match is case-insensitive against a closed
// vocabulary with optional pluralization.
func SplitUnit(s string) (unit, rest string) {
	m := unitRe.FindString(s)
	if m == "" {
		return "", s
	}
	return m, strings.TrimSpace(s[len(m):])
}

// Classify assigns a structural kind to one raw line.
func Classify(raw string) LineKind {
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return KindPlain
	case markdownHdrRe.MatchString(trimmed):
		return KindHeader
	case looksLikeHeader(trimmed):
		return KindHeader
	case bulletMarkerRe.MatchString(trimmed):
		return KindBulleted
	case numberMarkerRe.MatchString(trimmed):
		return KindNumbered
	case IsMeasurementLine(trimmed):
		return KindMeasurement
	case keyValueRe.MatchString(trimmed):
		return KindKeyValue
	default:
		return KindPlain
	}
}

// looksLikeHeader matches short colon-terminated lines such as "Ingredients:"
// that carry no value after the colon.
func looksLikeHeader(trimmed string) bool {
	stripped := strings.TrimSpace(StripEmphasis(trimmed))
	return strings.HasSuffix(stripped, ":") && len(stripped) <= 48 && !keyValueRe.MatchString(stripped)
}
