package week

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
)

const dateFmt = "Monday 2 January 2006"

// FormatDate renders t as a Swedish caption with the week number appended,
// e.g. "måndag 14 juli 2025 v29".
func FormatDate(t time.Time) string {
	return monday.Format(t, dateFmt, monday.LocaleSvSE) + fmt.Sprintf(" v%d", WeekOf(t))
}
