package weekday

import (
	"regexp"
	"strings"
)

// abbrevPattern matches a shorthand weekday used as a whole word. Word
// boundaries keep "mån" from firing inside "månaden" or "fre" inside "fred".
var abbrevPattern = regexp.MustCompile(`\b(mån|tis|ons|tors?|fre)\b`)

// ExtractFromText returns the canonical name of the first weekday mentioned
// in text, scanning left to right. A mention is either a full canonical name,
// possibly as the prefix of a longer word ("Torsdagsmys" yields "torsdag"),
// or a shorthand used as a whole word. When several weekdays appear, the
// leftmost one wins. Returns "" when nothing matches.
func ExtractFromText(text string) string {
	lowered := strings.ToLower(text)

	best := -1
	found := ""
	for _, name := range Canonical {
		if i := strings.Index(lowered, name); i >= 0 && (best < 0 || i < best) {
			best, found = i, name
		}
	}

	if loc := abbrevPattern.FindStringIndex(lowered); loc != nil && (best < 0 || loc[0] < best) {
		found = aliases[lowered[loc[0]:loc[1]]]
	}

	return found
}

// Validation is the result of checking a candidate weekday collection
// against the full canonical set.
type Validation struct {
	IsValid    bool
	Missing    []string // canonical names absent from the input, in canonical order
	Invalid    []string // entries that failed normalization, in input order
	Normalized []string // successfully normalized entries, in input order
}

// ValidateSet normalizes every entry in names and reports how the result
// compares to the full canonical set. IsValid holds only when all five
// canonical names are covered and no entry failed to normalize.
func ValidateSet(names []string) Validation {
	var v Validation
	seen := make(map[string]bool, len(Canonical))

	for _, raw := range names {
		name := Normalize(raw)
		if name == "" {
			v.Invalid = append(v.Invalid, raw)
			continue
		}
		v.Normalized = append(v.Normalized, name)
		seen[name] = true
	}

	for _, name := range Canonical {
		if !seen[name] {
			v.Missing = append(v.Missing, name)
		}
	}

	v.IsValid = len(v.Missing) == 0 && len(v.Invalid) == 0
	return v
}
