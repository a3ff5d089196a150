package week

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf(t *testing.T) {
	// Expected values follow the menu-page formula
	// ceil((daysSinceJan1 + jan1Weekday + 1) / 7), not ISO-8601.
	tests := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.January, 1), 1},  // Wednesday, jan1Weekday=3
		{date(2025, time.January, 4), 1},  // Saturday, last day of week 1
		{date(2025, time.January, 5), 2},  // Sunday starts week 2
		{date(2025, time.January, 6), 2},
		{date(2025, time.July, 14), 29},
		{date(2025, time.December, 31), 53},
		{date(2024, time.January, 1), 1},  // Monday, jan1Weekday=1
		{date(2024, time.February, 29), 9},
		{date(2024, time.December, 31), 53},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOf(tt.date))
		})
	}
}

func TestWeekOfIgnoresTimeOfDay(t *testing.T) {
	midnight := date(2025, time.July, 14)
	evening := time.Date(2025, time.July, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, WeekOf(midnight), WeekOf(evening))
}

func TestExtractWeekNumberAt(t *testing.T) {
	// Pinned clock for the fallback path: Monday of week 29.
	now := time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"date token", "Vecka 20250714", 29},
		{"date token inside sentence", "Matsedel för veckan 20250102 hittar du här", 1},
		{"date token beats week token", "Vecka 25 gäller från 20250714", 29},
		{"week token", "Vecka 25", 25},
		{"single digit week token", "Vecka 7", 7},
		{"week token inside sentence", "Lunchmeny Vecka 33 för skolan", 33},
		{"marker is case-sensitive", "vecka 25", 29},
		{"bare number without marker", "25 rätter på menyn", 29},
		{"no token falls back to now", "Dagens lunch: köttbullar", 29},
		{"empty text falls back to now", "", 29},
		{"marker without digits", "Vecka tjugofem", 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractWeekNumberAt(tt.text, now))
		})
	}
}

func TestExtractWeekNumberFallbackMatchesFormula(t *testing.T) {
	// The fallback must equal WeekOf applied to the same clock reading,
	// whatever that reading is.
	for _, now := range []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 3, 8, 15, 0, 0, time.UTC),
		time.Date(2026, time.June, 30, 18, 0, 0, 0, time.UTC),
	} {
		t.Run(now.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, WeekOf(now), ExtractWeekNumberAt("ingen vecka här", now))
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2025, time.July, 14), "måndag 14 juli 2025 v29"},
		{date(2025, time.January, 1), "onsdag 1 januari 2025 v1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.date))
		})
	}
}

func ExampleExtractWeekNumberAt() {
	fmt.Println(ExtractWeekNumberAt("Lunchmeny Vecka 33", time.Now()))
	// Output: 33
}
