// Package week extracts week numbers from menu-page text.
//
// Menu pages identify a week either with an 8-digit date (20250714) or with a
// bare "Vecka NN" heading. The date form is authoritative: when both appear,
// the week is computed from the date.
package week

import (
	"regexp"
	"strconv"
	"time"
)

type matcher struct {
	re    *regexp.Regexp
	parse func(match []string) (int, bool)
}

// matchers run in strict priority order. The 8-digit date pattern is checked
// before the bare week pattern so an embedded date token is never misread as
// a truncated week number.
var matchers = []matcher{
	{re: regexp.MustCompile(`\d{8}`), parse: weekFromDateToken},
	{re: regexp.MustCompile(`Vecka (\d{1,2})`), parse: weekFromWeekToken},
}

// ExtractWeekNumberAt scans text for a week token and returns the week number
// it denotes. With no token present it falls back to the week of now.
func ExtractWeekNumberAt(text string, now time.Time) int {
	for _, m := range matchers {
		if match := m.re.FindStringSubmatch(text); match != nil {
			if week, ok := m.parse(match); ok {
				return week
			}
		}
	}
	return WeekOf(now)
}

// ExtractWeekNumber is ExtractWeekNumberAt against the wall clock. Tests
// should pin time through ExtractWeekNumberAt instead.
func ExtractWeekNumber(text string) int {
	return ExtractWeekNumberAt(text, time.Now())
}

// weekFromDateToken derives a week number from an 8-digit YYYYMMDD token.
// Out-of-range month or day components are normalized by time.Date, matching
// how the menu pages' own date handling behaves.
func weekFromDateToken(match []string) (int, bool) {
	token := match[0]
	year, _ := strconv.Atoi(token[:4])
	month, _ := strconv.Atoi(token[4:6])
	day, _ := strconv.Atoi(token[6:])
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return WeekOf(date), true
}

// weekFromWeekToken returns a bare "Vecka NN" token as-is, with no
// recomputation.
func weekFromWeekToken(match []string) (int, bool) {
	week, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return week, true
}

// WeekOf computes the week number of t as
//
//	ceil((daysSinceJan1 + jan1Weekday + 1) / 7)
//
// where daysSinceJan1 counts whole 24-hour periods since January 1 of t's
// year and jan1Weekday is January 1's day-of-week (0=Sunday..6=Saturday).
// This is the numbering the menu pages use. It is NOT ISO-8601 — there is no
// Thursday-based year anchoring — and it has to stay that way so extracted
// values keep matching the pages.
func WeekOf(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := int(t.Sub(jan1).Hours() / 24)
	offset := int(jan1.Weekday())
	return (days + offset + 1 + 6) / 7
}
