package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Missing returns the marker stored for values that fail numeric coercion.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether a coerced value is the missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// blankSentinels are raw cell values treated as absent before any parsing
// is attempted, matching the conventions of the scraped source files.
var blankSentinels = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
	"-":    {},
}

func isBlank(raw string) bool {
	_, ok := blankSentinels[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// IsMissingText reports whether a raw cell holds one of the textual missing
// markers ("N/A", "null", ...) rather than a real value. Categorical counts
// use it so marker tokens never show up as categories of their own.
func IsMissingText(raw string) bool {
	return isBlank(raw)
}

// CoerceNumeric converts one raw cell to a number. Thousands separators are
// stripped and a trailing unit suffix such as " m²" is removed before
// parsing. Values that still fail to parse yield (Missing(), false) rather
// than an error, so one bad cell never aborts its column.
func CoerceNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if isBlank(s) {
		return Missing(), false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = trimUnitSuffix(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing(), false
	}
	return v, true
}

// trimUnitSuffix drops a trailing run of characters that cannot be part of
// a number, e.g. "149 m²" -> "149" and "75.5 sqm" -> "75.5".
func trimUnitSuffix(s string) string {
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		end--
	}
	return strings.TrimSpace(s[:end])
}

// parsesStrict reports whether a raw cell is a plain number with no cleanup
// beyond surrounding whitespace.
func parsesStrict(raw string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil
}

// CoerceColumn applies CoerceNumeric to every cell independently. The
// result always has the same length as the input; failed cells hold the
// missing marker.
func CoerceColumn(raw []string) []float64 {
	values := make([]float64, len(raw))
	for i, cell := range raw {
		v, _ := CoerceNumeric(cell)
		values[i] = v
	}
	return values
}
