// Package display holds small presentation helpers shared by the
// analytics services.
package display

import (
	"fmt"
	"regexp"
	"time"
)

// Map titles may carry a trailing bracketed tag such as "Ruins [4v4]".
var mapTagPattern = regexp.MustCompile(`\s*\[[^\[\]]*\]$`)

// CleanMapTitle strips the trailing bracketed tag from a map title.
// Titles without a tag are returned unchanged.
func CleanMapTitle(title string) string {
	return mapTagPattern.ReplaceAllString(title, "")
}

// FormatDuration renders the time between two instants as MM:SS, the
// format used by the game duration columns.
func FormatDuration(start, end time.Time) string {
	return FormatSeconds(end.Sub(start).Seconds())
}

// FormatSeconds renders a duration in seconds as MM:SS.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
