// Package weekday maps Swedish weekday names, abbreviations and free-form
// mentions onto a canonical five-day set (Monday through Friday).
package weekday

import (
	"strings"
	"time"
)

// Canonical holds the weekday names in calendar order, Monday through Friday.
// The set is closed: Saturday and Sunday have no canonical name.
var Canonical = []string{"måndag", "tisdag", "onsdag", "torsdag", "fredag"}

// aliases maps lowercase variants to canonical names. Every canonical name
// aliases itself, which makes Normalize idempotent.
var aliases = map[string]string{
	"måndag":  "måndag",
	"mån":     "måndag",
	"tisdag":  "tisdag",
	"tis":     "tisdag",
	"onsdag":  "onsdag",
	"ons":     "onsdag",
	"torsdag": "torsdag",
	"tors":    "torsdag",
	"tor":     "torsdag",
	"fredag":  "fredag",
	"fre":     "fredag",
}

const trailingPunct = ".,:;!?"

// IsValid reports whether s, after case-folding, exactly equals one of the
// five canonical names. Abbreviations and padded input do not count as valid;
// Normalize is the lenient path.
func IsValid(s string) bool {
	folded := strings.ToLower(s)
	for _, name := range Canonical {
		if folded == name {
			return true
		}
	}
	return false
}

// Normalize resolves s to a canonical weekday name: surrounding whitespace is
// trimmed, trailing punctuation stripped, case folded, and the result looked
// up in the alias table. Returns "" when no rule matches.
func Normalize(s string) string {
	folded := strings.ToLower(strings.TrimSpace(s))
	folded = strings.TrimRight(folded, trailingPunct)
	return aliases[folded]
}

// FromDayIndex maps a host-clock day-of-week index (0=Sunday..6=Saturday) to
// a canonical name. Indices 0 and 6 fall on the weekend and return "", as
// does anything out of range.
func FromDayIndex(i int) string {
	if i < 1 || i > 5 {
		return ""
	}
	return Canonical[i-1]
}

// DayIndex returns the day-of-week index (1=Monday..5=Friday) for anything
// Normalize recognizes, or -1.
func DayIndex(name string) int {
	canonical := Normalize(name)
	if canonical == "" {
		return -1
	}
	for i, n := range Canonical {
		if n == canonical {
			return i + 1
		}
	}
	return -1
}

// Next returns the weekday after name within the five-day cycle, wrapping
// Friday back around to Monday. Unrecognized input returns "".
func Next(name string) string {
	i := DayIndex(name)
	if i < 0 {
		return ""
	}
	return Canonical[i%5]
}

// Previous returns the weekday before name within the five-day cycle,
// wrapping Monday back around to Friday. Unrecognized input returns "".
func Previous(name string) string {
	i := DayIndex(name)
	if i < 0 {
		return ""
	}
	return Canonical[(i+3)%5]
}

// IsTodayOn reports whether name refers to the weekday of t.
func IsTodayOn(name string, t time.Time) bool {
	i := DayIndex(name)
	return i >= 0 && i == int(t.Weekday())
}

// IsToday reports whether name refers to the current wall-clock weekday.
// Tests should pin time through IsTodayOn instead.
func IsToday(name string) bool {
	return IsTodayOn(name, time.Now())
}
