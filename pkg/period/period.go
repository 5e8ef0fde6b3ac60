// Package period computes the boundaries of the ladder reporting
// windows. Seasons run over fixed bimonthly pairs anchored on January,
// so the pairs are always Jan-Feb, Mar-Apr, May-Jun and so on.
package period

import (
	"time"
)

// Label shown next to period-scoped pages.
const Label = "2 months"

// Window is a closed calendar interval covering one bimonthly pair.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Current returns the reporting window containing now: from the first
// day of the first month of the pair through the last calendar day of
// the second month. Month lengths and leap years are handled by the
// time package date normalization.
func Current(now time.Time) Window {
	year, month, _ := now.Date()
	firstMonth := month - time.Month((int(month)-1)%2)

	start := time.Date(year, firstMonth, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 2, -1)

	return Window{
		Start: start,
		End:   end,
		Label: Label,
	}
}
